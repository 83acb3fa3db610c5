//go:generate go run go.uber.org/mock/mockgen -source=seat_binding.go -destination=../mocks/mock_seat_binding_repository.go -package=mocks
package repositories

import (
	"bytes"
	"fmt"
	"game-lab/domain"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const seatPrefix = "seat:"

// ISeatBindingRepository remembers which seat a session occupies in a room.
type ISeatBindingRepository interface {
	BindSeat(roomID domain.RoomID, sessionID string, seat int) error
	GetSeat(roomID domain.RoomID, sessionID string) (int, bool, error)
	ShiftAfterRemoval(roomID domain.RoomID, removed int) error
	DeleteRoom(roomID domain.RoomID) error
	All() ([]SeatBinding, error)
}

type SeatBinding struct {
	RoomID    domain.RoomID
	SessionID string
	Seat      int
}

type SeatBindingRepository struct {
	db *badger.DB
}

func NewSeatBindingRepository(db *badger.DB) ISeatBindingRepository {
	return &SeatBindingRepository{db: db}
}

// Keys are "seat:{room}:{session}" so that a room is a key prefix.
func seatKey(roomID domain.RoomID, sessionID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", seatPrefix, roomID, sessionID))
}

func roomPrefix(roomID domain.RoomID) []byte {
	return []byte(fmt.Sprintf("%s%s:", seatPrefix, roomID))
}

// BindSeat overwrites any previous binding of the session in that room.
func (r SeatBindingRepository) BindSeat(roomID domain.RoomID, sessionID string, seat int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(seatKey(roomID, sessionID), []byte(strconv.Itoa(seat)))
	})
}

func (r SeatBindingRepository) GetSeat(roomID domain.RoomID, sessionID string) (int, bool, error) {
	var seat int
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(seatKey(roomID, sessionID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			seat, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("unable to read seat binding: %w", err)
	}
	return seat, true, nil
}

// ShiftAfterRemoval follows the positional renumbering of a room:
// bindings to the removed seat are dropped, later seats move down by one.
func (r SeatBindingRepository) ShiftAfterRemoval(roomID domain.RoomID, removed int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		bindings, err := scan(txn, roomPrefix(roomID))
		if err != nil {
			return err
		}
		for _, b := range bindings {
			key := seatKey(b.RoomID, b.SessionID)
			switch {
			case b.Seat == removed:
				err = txn.Delete(key)
			case b.Seat > removed:
				err = txn.Set(key, []byte(strconv.Itoa(b.Seat-1)))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r SeatBindingRepository) DeleteRoom(roomID domain.RoomID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		bindings, err := scan(txn, roomPrefix(roomID))
		if err != nil {
			return err
		}
		for _, b := range bindings {
			if err := txn.Delete(seatKey(b.RoomID, b.SessionID)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r SeatBindingRepository) All() ([]SeatBinding, error) {
	var bindings []SeatBinding
	err := r.db.View(func(txn *badger.Txn) (err error) {
		bindings, err = scan(txn, []byte(seatPrefix))
		return err
	})
	return bindings, err
}

// scan collects every binding under prefix. Writes happen after the iterator is closed.
func scan(txn *badger.Txn, prefix []byte) ([]SeatBinding, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var bindings []SeatBinding
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		binding, err := parseKey(item.KeyCopy(nil))
		if err != nil {
			return nil, err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		if binding.Seat, err = strconv.Atoi(string(val)); err != nil {
			return nil, fmt.Errorf("corrupted seat binding %q: %w", item.Key(), err)
		}
		bindings = append(bindings, binding)
	}
	return bindings, nil
}

// Room ids never contain ':', session ids may.
func parseKey(key []byte) (SeatBinding, error) {
	rest := bytes.TrimPrefix(key, []byte(seatPrefix))
	room, session, ok := bytes.Cut(rest, []byte(":"))
	if !ok {
		return SeatBinding{}, fmt.Errorf("malformed seat key %q", key)
	}
	return SeatBinding{RoomID: domain.RoomID(room), SessionID: string(session)}, nil
}
