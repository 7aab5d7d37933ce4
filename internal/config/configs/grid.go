package configs

// Grid defines the dimensions of the shared advertisement grid. Cells are
// addressed by integer coordinates in [0, Size) on both axes. The square
// of GenesisSize cells nearest the origin is flagged specially at
// placement time.
type Grid struct {
	// Size is the side length of the grid in cells. Defaults to 1000.
	Size int `env:"SIZE" envDefault:"1000"`
	// GenesisSize is the side length of the genesis area. Defaults to 10.
	GenesisSize int `env:"GENESIS_SIZE" envDefault:"10"`
}
