package sky

// StarColor returns the color of a star at height y in a viewport h pixels
// tall. Stars above the middle are white. Below it they take the sky color
// behind them, washed toward white as they climb.
func StarColor(y, h int) Color {
	fy, fh := float64(y), float64(h)
	half := fh / 2
	if fy > half {
		return White
	}

	cutoff := fh * Transition
	var c Color
	if fy < cutoff {
		c = Blend(Dawn, Twilight, fy/cutoff)
	} else {
		c = Blend(Twilight, Night, (fy-cutoff)/(fh-cutoff))
	}

	return Blend(c, White, fy/half)
}
