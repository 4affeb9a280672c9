package aerocoef

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotYawSlices draws one line per theta slice of a single coefficient
// channel against yaw and saves the figure. values[k][i] is the channel
// value at (betasDeg[i], thetasDeg[k]).
func PlotYawSlices(path string, channel int, betasDeg, thetasDeg []float64, values [][]float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs yaw", ChannelName(channel))
	p.X.Label.Text = "yaw [deg]"
	p.Y.Label.Text = ChannelName(channel)

	var args []interface{}
	for k, t := range thetasDeg {
		pts := make(plotter.XYs, len(betasDeg))
		for i := range betasDeg {
			pts[i].X = betasDeg[i]
			pts[i].Y = values[k][i]
		}
		args = append(args, fmt.Sprintf("theta=%.1f", t), pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
