// Package game contains the content model and player record of the story engine.
//
// Content (races, classes, class requirements, items, shops and stories) is authored
// outside the engine and read as a GameData bundle. The Player is the mutable root that
// every gameplay operation replaces with a new value.
package game
