package component

// Coin is a collectible that heals the player by Value and is destroyed on
// contact.
type Coin struct {
	Kind  string
	Value int
}

var CoinComponent = NewComponent[Coin]()
