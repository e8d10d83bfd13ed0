package domain

import "math/rand/v2"

type GameChoice string

const (
	Rock     GameChoice = "rock"
	Scissors GameChoice = "scissors"
	Paper    GameChoice = "paper"
)

type Outcome int

const (
	Draw Outcome = iota
	UserWins
	BotWins
)

// beats holds the dominance table: key beats value.
var beats = map[GameChoice]GameChoice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Resolve maps a pair of game choices to an outcome. Equal choices draw,
// otherwise the dominance table decides.
func Resolve(userChoice, botChoice GameChoice) Outcome {
	if userChoice == botChoice {
		return Draw
	}

	if beats[userChoice] == botChoice {
		return UserWins
	}

	return BotWins
}

var gameChoices = []GameChoice{Rock, Scissors, Paper}

// RandomChoice draws a game choice uniformly at random.
func RandomChoice() GameChoice {
	return gameChoices[rand.IntN(len(gameChoices))]
}

// IsGameChoice reports whether a callback payload is a valid game choice.
func IsGameChoice(data string) bool {
	_, ok := beats[GameChoice(data)]
	return ok
}

var choiceLabels = map[GameChoice]string{
	Rock:     "Камень",
	Scissors: "Ножницы",
	Paper:    "Бумага",
}

// Label returns the localized display name of a choice.
func (c GameChoice) Label() string {
	return choiceLabels[c]
}

func (o Outcome) String() string {
	switch o {
	case UserWins:
		return "Вы победили!"
	case BotWins:
		return "Бот победил!"
	default:
		return "Ничья!"
	}
}
