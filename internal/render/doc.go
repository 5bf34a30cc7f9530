package render

// Package render draws the charts of the toolkit with go-chart: the
// stress-strain curve with its fit window for the interactive review, and
// the per-sample strength and modulus bar charts. Curve rendering also
// reports the plot geometry so pointer positions can be mapped back to
// strain.
