// Package engine implements the rules of the story game: character creation,
// progression, inventory and equipment, choice resolution, commerce and dice.
//
// Every operation is a pure transform. Inputs are never modified; operations that
// change a player return a new *game.Player. Illegal operations are no-ops that
// return the input unchanged, so nothing here returns an error except dice rolling,
// which surfaces a failing random source.
package engine
