package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
)

const (
	assessmentSystem = "You are a water quality expert. Provide clear, concise analysis in JSON format."
	similaritySystem = "You are a water quality data analyst. Write clear, natural explanations in plain text."

	notMeasured  = "Not measured"
	notAvailable = "N/A"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNotMeasured(v *float64, unit string) string {
	if v == nil {
		return notMeasured
	}
	if unit == "" {
		return formatNumber(*v)
	}
	return formatNumber(*v) + " " + unit
}

func orNA(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return formatNumber(*v)
}

func orNAString(v *string) string {
	if v == nil || *v == "" {
		return notAvailable
	}
	return *v
}

// readingsBlock renders the three sensor lines shared by both prompts.
func readingsBlock(r domain.SensorReadings) string {
	return fmt.Sprintf("pH: %s\nTDS (Total Dissolved Solids): %s\nTurbidity: %s",
		orNotMeasured(r.PH, ""),
		orNotMeasured(r.TDS, "ppm"),
		orNotMeasured(r.Turbidity, "NTU"),
	)
}

func assessmentPrompt(r domain.SensorReadings) string {
	var b strings.Builder
	b.WriteString("You are a water quality expert. Analyze the following water quality test results and provide a comprehensive assessment:\n\n")
	b.WriteString(readingsBlock(r))
	b.WriteString("\n\nPlease provide:\n")
	b.WriteString("1. A summary of the results (2-3 sentences) - explain what these values mean and whether they indicate good or poor water quality\n")
	b.WriteString("2. If the water quality is not optimal, provide specific solutions and recommendations to improve it\n\n")
	b.WriteString(`Format your response as JSON with two fields: "summary" and "solution". If the water quality is good, set "solution" to an empty string.`)
	return b.String()
}

func sampleLine(idx int, s domain.HistoricalSample) string {
	return fmt.Sprintf("Experiment %d: pH=%s, TDS=%s ppm, Turbidity=%s NTU, Longitude=%s, Latitude=%s, Date=%s, Time=%s",
		idx,
		orNA(s.PH),
		orNA(s.TDS),
		orNA(s.Turbidity),
		orNA(s.Longitude),
		orNA(s.Latitude),
		orNAString(s.Date),
		orNAString(s.Time),
	)
}

func similarityPrompt(r domain.SensorReadings, samples []domain.HistoricalSample) string {
	var b strings.Builder
	b.WriteString("You are a water quality data analyst. I have water quality test results from a new experiment:\n")
	b.WriteString(readingsBlock(r))
	b.WriteString("\n\nHere is a list of historical experiments from our database:\n")
	for i, s := range samples {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sampleLine(i+1, s))
	}
	b.WriteString("\n\nPlease analyze these historical experiments and identify which one has the most similar pH, TDS, and turbidity values to the new experiment. ")
	b.WriteString("Write a brief analysis (2-3 sentences) explaining which experiment is most similar, why it's similar, ")
	b.WriteString("and translate the longitude and latitude coordinates into the country name where that experiment was conducted. ")
	b.WriteString("Write naturally in plain text, as if explaining to a colleague.")
	return b.String()
}
