package anomaly

import (
	"fmt"

	"github.com/ylk14/SmartPlant-sub001/config"
	"github.com/ylk14/SmartPlant-sub001/models"
)

// Finding is one alert candidate produced by evaluation, in the order it was
// derived. The caller turns findings into Alert rows.
type Finding struct {
	Type    string
	Message string
}

// Evaluator checks readings against the configured thresholds. It does no I/O
// and never fails: a nil metric simply cannot breach a threshold.
type Evaluator struct {
	thresholds config.Thresholds
}

func NewEvaluator(t config.Thresholds) *Evaluator {
	return &Evaluator{thresholds: t}
}

// Evaluate returns the alert findings for one reading. The order is fixed:
// motion, then temperature (high or low, never both), then humidity, then
// soil moisture. An empty result is the common case, not an error.
func (e *Evaluator) Evaluate(r models.Reading) []Finding {
	var findings []Finding
	t := e.thresholds

	if r.MotionDetected {
		findings = append(findings, Finding{
			Type:    models.AlertTypeMotion,
			Message: "Motion detected near the plant",
		})
	}

	if r.Temperature != nil {
		if *r.Temperature > t.TempHigh {
			findings = append(findings, Finding{
				Type:    models.AlertTypeEnvironment,
				Message: fmt.Sprintf("High Temperature: %g°C exceeds the %g°C limit", *r.Temperature, t.TempHigh),
			})
		} else if *r.Temperature < t.TempLow {
			findings = append(findings, Finding{
				Type:    models.AlertTypeEnvironment,
				Message: fmt.Sprintf("Low Temperature: %g°C is below the %g°C limit", *r.Temperature, t.TempLow),
			})
		}
	}

	if r.Humidity != nil && *r.Humidity > t.HumidityHigh {
		findings = append(findings, Finding{
			Type:    models.AlertTypeEnvironment,
			Message: fmt.Sprintf("High Humidity: %g%% exceeds the %g%% limit", *r.Humidity, t.HumidityHigh),
		})
	}

	if r.SoilMoisture != nil && *r.SoilMoisture < t.SoilLow {
		findings = append(findings, Finding{
			Type:    models.AlertTypeEnvironment,
			Message: fmt.Sprintf("Low Soil Moisture: %g%% is below the %g%% limit", *r.SoilMoisture, t.SoilLow),
		})
	}

	return findings
}
