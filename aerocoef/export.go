package aerocoef

import (
	"bytes"
	"strconv"
)

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(",")
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

// WriteCoefficientCSV writes one row per query point: the angles in degrees
// followed by the six channels of every frame present in the evaluation.
func WriteCoefficientCSV(buf *bytes.Buffer, betas, thetas []float64, ev *Evaluation) {
	buf.WriteString("beta_deg")
	buf.WriteString(",theta_deg")
	if ev.Structural[0] != nil {
		for ch := 0; ch < NumChannels; ch++ {
			buf.WriteString("," + ChannelName(ch) + "_Ls")
		}
	}
	if ev.WindNormal[0] != nil {
		for ch := 0; ch < NumChannels; ch++ {
			buf.WriteString("," + ChannelName(ch) + "_Lnw")
		}
	}
	buf.WriteString("\n")

	for i := range betas {
		buf.WriteString(strconv.FormatFloat(Deg(betas[i]), 'f', -1, 64))
		writeFloat(buf, Deg(thetas[i]))
		if ev.Structural[0] != nil {
			for ch := 0; ch < NumChannels; ch++ {
				writeFloat(buf, ev.Structural[ch][i])
			}
		}
		if ev.WindNormal[0] != nil {
			for ch := 0; ch < NumChannels; ch++ {
				writeFloat(buf, ev.WindNormal[ch][i])
			}
		}
		buf.WriteString("\n")
	}
}

// WriteDerivativeCSV writes one row per query point: the angles in degrees,
// the six dC/dyaw values and the six dC/dtheta values.
func WriteDerivativeCSV(buf *bytes.Buffer, betas, thetas []float64, ds *DerivativeSet) {
	buf.WriteString("beta_deg")
	buf.WriteString(",theta_deg")
	for ch := 0; ch < NumChannels; ch++ {
		buf.WriteString(",d" + ChannelName(ch) + "_dbeta")
	}
	for ch := 0; ch < NumChannels; ch++ {
		buf.WriteString(",d" + ChannelName(ch) + "_dtheta")
	}
	buf.WriteString("\n")

	for i := range betas {
		buf.WriteString(strconv.FormatFloat(Deg(betas[i]), 'f', -1, 64))
		writeFloat(buf, Deg(thetas[i]))
		for ch := 0; ch < NumChannels; ch++ {
			writeFloat(buf, ds.DBeta[ch][i])
		}
		for ch := 0; ch < NumChannels; ch++ {
			writeFloat(buf, ds.DTheta[ch][i])
		}
		buf.WriteString("\n")
	}
}
