package runtime

import (
	_ "embed"
	"fmt"
	"game-lab/domain"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Attempts before a random suffix is appended to make a collision unlikely.
const maxSlugAttempts = 32

var (
	//go:embed words/adjectives.txt
	rawAdjectives string
	//go:embed words/nouns.txt
	rawNouns string

	adjectives = strings.Fields(rawAdjectives)
	nouns      = strings.Fields(rawNouns)
)

// IDGenerator produces candidate room ids. Attempt starts at 0 and grows on every collision.
type IDGenerator func(attempt int) domain.RoomID

// SlugID returns "adjective-adjective-noun" ids, e.g. "brave-misty-otter".
func SlugID(attempt int) domain.RoomID {
	slug := fmt.Sprintf("%s-%s-%s", lo.Sample(adjectives), lo.Sample(adjectives), lo.Sample(nouns))
	if attempt >= maxSlugAttempts {
		slug = fmt.Sprintf("%s-%s", slug, strings.Split(uuid.NewString(), "-")[0])
	}
	return domain.RoomID(slug)
}
