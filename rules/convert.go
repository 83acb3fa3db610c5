package rules

import (
	"encoding/json"
	"math"

	lua "github.com/yuin/gopher-lua"
)

func jsonToLua(L *lua.LState, raw json.RawMessage) (lua.LValue, error) {
	if len(raw) == 0 {
		return lua.LNil, nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return lua.LNil, err
	}
	return toLua(L, value), nil
}

func toLua(L *lua.LState, value any) lua.LValue {
	switch v := value.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(v)
	case float64:
		return lua.LNumber(v)
	case string:
		return lua.LString(v)
	case []any:
		table := L.NewTable()
		for _, item := range v {
			table.Append(toLua(L, item))
		}
		return table
	case map[string]any:
		table := L.NewTable()
		for key, item := range v {
			table.RawSetString(key, toLua(L, item))
		}
		return table
	default:
		return lua.LNil
	}
}

// toGo converts a Lua value into JSON friendly Go values.
// Integral numbers become int; a table with only positive integer keys becomes a slice.
func toGo(value lua.LValue) any {
	switch v := value.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if n := v.Len(); n > 0 && isSequence(v, n) {
			items := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				items = append(items, toGo(v.RawGetInt(i)))
			}
			return items
		}
		return toMap(v)
	default:
		return nil
	}
}

func isSequence(table *lua.LTable, n int) bool {
	count := 0
	table.ForEach(func(lua.LValue, lua.LValue) { count++ })
	return count == n
}

func toMap(value lua.LValue) map[string]any {
	result := map[string]any{}
	table, ok := value.(*lua.LTable)
	if !ok {
		return result
	}
	table.ForEach(func(k, v lua.LValue) {
		if v == lua.LNil {
			return
		}
		result[k.String()] = toGo(v)
	})
	return result
}
