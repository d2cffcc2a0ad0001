package parallel

// Band is a contiguous range of image rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

// Bands splits height rows into at most n contiguous bands of near-equal
// size, in top-to-bottom order. Bands never overlap and together cover
// every row exactly once. n <= 0 is treated as 1.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}

	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range bands {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}

// BandsFor picks a band count for a pool: a few bands per worker so that a
// slow band does not leave the other workers idle, capped at one band per
// row.
func BandsFor(height, workers int) []Band {
	return Bands(height, workers*4)
}
