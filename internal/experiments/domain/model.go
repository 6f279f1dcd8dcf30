package domain

import "time"

// Experiment is a single water-quality experiment owned by a user.
// Sensor fields are nil until measured.
type Experiment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	PH          *float64  `json:"ph"`
	TDS         *float64  `json:"tds"`
	Turbidity   *float64  `json:"turbidity"`
	Summary     *string   `json:"summary"`
	Solution    *string   `json:"solution"`
}

// HistoricalSample is a read-only row of the experiments bank.
type HistoricalSample struct {
	ID        string   `json:"id"`
	Date      *string  `json:"date"`
	Time      *string  `json:"time"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	Turbidity *float64 `json:"turbidity"`
	TDS       *float64 `json:"tds"`
	PH        *float64 `json:"ph"`
}

// SensorReadings is the subset of sensor values supplied in one update.
type SensorReadings struct {
	PH        *float64 `json:"ph"`
	TDS       *float64 `json:"tds"`
	Turbidity *float64 `json:"turbidity"`
}

// Empty reports whether no sensor value is present.
func (r SensorReadings) Empty() bool {
	return r.PH == nil && r.TDS == nil && r.Turbidity == nil
}

// ExperimentPatch is a partial update. Nil fields are left untouched.
type ExperimentPatch struct {
	PH        *float64
	TDS       *float64
	Turbidity *float64
	Summary   *string
	Solution  *string
}

// NewPatch seeds a patch with the present sensor readings.
func NewPatch(r SensorReadings) ExperimentPatch {
	return ExperimentPatch{PH: r.PH, TDS: r.TDS, Turbidity: r.Turbidity}
}

// Apply overwrites every field of e that is present in p.
func (p ExperimentPatch) Apply(e *Experiment) {
	if p.PH != nil {
		e.PH = p.PH
	}
	if p.TDS != nil {
		e.TDS = p.TDS
	}
	if p.Turbidity != nil {
		e.Turbidity = p.Turbidity
	}
	if p.Summary != nil {
		e.Summary = p.Summary
	}
	if p.Solution != nil {
		e.Solution = p.Solution
	}
}

type CreateExperimentRequest struct {
	UserID      string
	Name        string
	Description *string
}
