package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDrawOnEqualChoices(t *testing.T) {
	for _, choice := range []GameChoice{Rock, Scissors, Paper} {
		assert.Equal(t, Draw, Resolve(choice, choice))
	}
}

func TestResolveDominanceTable(t *testing.T) {
	testCases := []struct {
		userChoice GameChoice
		botChoice  GameChoice
		want       Outcome
	}{
		{Rock, Scissors, UserWins},
		{Scissors, Paper, UserWins},
		{Paper, Rock, UserWins},
		{Scissors, Rock, BotWins},
		{Paper, Scissors, BotWins},
		{Rock, Paper, BotWins},
	}

	for _, tc := range testCases {
		t.Run(string(tc.userChoice)+" vs "+string(tc.botChoice), func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.userChoice, tc.botChoice))
		})
	}
}

func TestResolveAntisymmetric(t *testing.T) {
	choices := []GameChoice{Rock, Scissors, Paper}

	for _, a := range choices {
		for _, b := range choices {
			if a == b {
				continue
			}

			forward := Resolve(a, b)
			backward := Resolve(b, a)

			if forward == UserWins {
				assert.Equal(t, BotWins, backward)
			} else {
				assert.Equal(t, UserWins, backward)
			}
		}
	}
}

func TestRandomChoiceAlwaysValid(t *testing.T) {
	for range 100 {
		assert.True(t, IsGameChoice(string(RandomChoice())))
	}
}

func TestIsGameChoice(t *testing.T) {
	assert.True(t, IsGameChoice("rock"))
	assert.True(t, IsGameChoice("scissors"))
	assert.True(t, IsGameChoice("paper"))
	assert.False(t, IsGameChoice("back_to_menu"))
	assert.False(t, IsGameChoice(""))
}

func TestChoiceLabels(t *testing.T) {
	assert.Equal(t, "Камень", Rock.Label())
	assert.Equal(t, "Ножницы", Scissors.Label())
	assert.Equal(t, "Бумага", Paper.Label())
}

func TestOutcomeText(t *testing.T) {
	assert.Equal(t, "Ничья!", Draw.String())
	assert.Equal(t, "Вы победили!", UserWins.String())
	assert.Equal(t, "Бот победил!", BotWins.String())
}
