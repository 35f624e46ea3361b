package ports_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

func TestHealthReport_Status(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")

	tests := []struct {
		name   string
		report ports.HealthReport
		want   ports.HealthStatus
	}{
		{name: "empty", report: ports.HealthReport{}, want: ports.HealthReady},
		{
			name: "all healthy",
			report: ports.HealthReport{
				"postgres":  {Criticality: ports.Critical},
				"validator": {Criticality: ports.Degradable},
			},
			want: ports.HealthReady,
		},
		{
			name: "degradable failing",
			report: ports.HealthReport{
				"postgres":           {Criticality: ports.Critical},
				"webhook:hooks.test": {Err: errDown, Criticality: ports.Degradable},
			},
			want: ports.HealthDegraded,
		},
		{
			name: "critical failing wins",
			report: ports.HealthReport{
				"postgres":  {Err: errDown, Criticality: ports.Critical},
				"validator": {Err: errDown, Criticality: ports.Degradable},
			},
			want: ports.HealthNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.report.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}
