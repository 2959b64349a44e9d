//go:build devnet

package config

// Active is the network this binary was built for.
var Active = Devnet
