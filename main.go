// aerocoef tabulates bridge-deck aerodynamic coefficient surfaces, fitted to
// wind-tunnel measurements, at arbitrary wind incidence angles.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/bmcs/aerocoef-go/aerocoef"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("aerocoef",
		"Tabulates bridge-deck aerodynamic coefficients at arbitrary wind angles")

	input := parser.String("i", "input", &argparse.Options{
		Default: filepath.Join("aerocoef", "testdata", "aero_coef_experimental_data.csv"),
		Help:    "measurement table (CSV)"})

	method := parser.Selector("m", "method", []string{"free", "cons", "cosine", "cosine2d", "hybrid"}, &argparse.Options{
		Default: "cons",
		Help:    "extrapolation method"})

	frame := parser.Selector("c", "coor", []string{"Ls", "Lnw", "both"}, &argparse.Options{
		Default: "Ls",
		Help:    "coefficient reference frame: structural (Ls), wind-normal (Lnw) or both"})

	betaMin := parser.Float("", "beta_min", &argparse.Options{
		Default: -180.0,
		Help:    "first yaw of the output grid [deg]"})

	betaMax := parser.Float("", "beta_max", &argparse.Options{
		Default: 180.0,
		Help:    "last yaw of the output grid [deg]"})

	betaStep := parser.Float("", "beta_step", &argparse.Options{
		Default: 1.0,
		Help:    "yaw step of the output grid [deg]"})

	thetaMin := parser.Float("", "theta_min", &argparse.Options{
		Default: -12.0,
		Help:    "first inclination of the output grid [deg]"})

	thetaMax := parser.Float("", "theta_max", &argparse.Options{
		Default: 12.0,
		Help:    "last inclination of the output grid [deg]"})

	thetaStep := parser.Float("", "theta_step", &argparse.Options{
		Default: 1.0,
		Help:    "inclination step of the output grid [deg]"})

	derivatives := parser.Flag("d", "derivatives", &argparse.Options{
		Help: "tabulate the angle derivatives instead of the coefficients"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output file path (stdout when empty)"})

	plotPath := parser.String("p", "plot", &argparse.Options{
		Default: "",
		Help:    "save a yaw-slice plot to this PNG path"})

	plotChannel := parser.Selector("", "plot_channel", []string{"Cx", "Cy", "Cz", "Cxx", "Cyy", "Czz"}, &argparse.Options{
		Default: "Cz",
		Help:    "coefficient channel to plot"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("aerocoef")
	switch *logLevel {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}

	tbl, err := aerocoef.LoadTableFile(*input)
	if err != nil {
		log.Fatal(err)
	}

	strategy, err := aerocoef.ParseStrategy(*method)
	if err != nil {
		log.Fatal(err)
	}
	frameVal, err := aerocoef.ParseFrame(*frame)
	if err != nil {
		log.Fatal(err)
	}

	var cfg *aerocoef.FitConfigSet
	if strategy == aerocoef.ConstrainedFit {
		cfg = aerocoef.ConstrainedFitConfig()
	} else {
		cfg = aerocoef.FreeFitConfig()
	}

	// Output grid, flattened row-major with theta descending like the
	// reference tables.
	betaGrid := gridDeg(*betaMin, *betaMax, *betaStep)
	thetaGrid := gridDeg(*thetaMax, *thetaMin, -*thetaStep)
	betas := make([]float64, 0, len(betaGrid)*len(thetaGrid))
	thetas := make([]float64, 0, len(betaGrid)*len(thetaGrid))
	for _, t := range thetaGrid {
		for _, b := range betaGrid {
			betas = append(betas, aerocoef.Rad(b))
			thetas = append(thetas, aerocoef.Rad(t))
		}
	}

	buf := bytes.NewBuffer([]byte{})
	var ev *aerocoef.Evaluation
	if *derivatives {
		ds, err := tbl.CoefficientDerivatives(betas, thetas, strategy, frameVal, cfg)
		if err != nil {
			log.Fatal(err)
		}
		aerocoef.WriteDerivativeCSV(buf, betas, thetas, ds)
	} else {
		ev, err = tbl.Coefficients(betas, thetas, strategy, frameVal, cfg)
		if err != nil {
			log.Fatal(err)
		}
		aerocoef.WriteCoefficientCSV(buf, betas, thetas, ev)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("saving table: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}

	if *plotPath != "" && ev != nil {
		ch, err := aerocoef.ChannelIndex(*plotChannel)
		if err != nil {
			log.Fatal(err)
		}
		vals := ev.Structural
		if vals[ch] == nil {
			vals = ev.WindNormal
		}
		slices := make([][]float64, len(thetaGrid))
		for k := range thetaGrid {
			slices[k] = vals[ch][k*len(betaGrid) : (k+1)*len(betaGrid)]
		}
		if err := aerocoef.PlotYawSlices(*plotPath, ch, betaGrid, thetaGrid, slices); err != nil {
			log.Fatal(err)
		}
		logger.Infof("saved plot: %s", *plotPath)
	}
}

// gridDeg builds an inclusive range. A negative step counts down.
func gridDeg(from, to, step float64) []float64 {
	var out []float64
	if step > 0 {
		for v := from; v <= to+step/2; v += step {
			out = append(out, v)
		}
	} else if step < 0 {
		for v := from; v >= to+step/2; v += step {
			out = append(out, v)
		}
	}
	return out
}
