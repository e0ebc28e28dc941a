package producer

import (
	"fmt"
	"math/rand"
)

var (
	pokemon = []string{
		"Pikachu", "Charmander", "Bulbasaur", "Squirtle",
		"Eevee", "Snorlax", "Gengar", "Jigglypuff", "Mewtwo",
	}
	moves = []string{
		"Thunderbolt", "Flamethrower", "Vine Whip", "Water Gun",
		"Quick Attack", "Hyper Beam", "Shadow Ball", "Sing", "Psychic",
	}
	verbs    = []string{"encountered", "battled", "caught", "trained", "evolved"}
	outcomes = []string{"epic", "tough", "effortless", "close", "critical", "hilarious"}
)

// Generator - endless sequence of trainer messages, two generators with
// the same seed produce the same sequence
type Generator struct {
	random *rand.Rand
}

// NewGenerator - new generator drawing from random
func NewGenerator(random *rand.Rand) *Generator {
	return &Generator{
		random: random,
	}
}

// NewSeededGenerator - new generator with its own seeded random source
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Next - next message
func (g *Generator) Next() string {
	return fmt.Sprintf(
		"Trainer %s %s using %s. Outcome: %s.",
		g.pick(verbs),
		g.pick(pokemon),
		g.pick(moves),
		g.pick(outcomes),
	)
}

func (g *Generator) pick(words []string) string {
	return words[g.random.Intn(len(words))]
}
