package board

// MarshalText encodes the square in algebraic notation.
func (sq Square) MarshalText() ([]byte, error) {
	return []byte(sq.String()), nil
}

// UnmarshalText decodes algebraic notation, accepting either case for the file.
func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := parseName(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
