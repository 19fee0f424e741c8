package seed

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

type scenario struct {
	Name       string             `yaml:"name"`
	Clear      bool               `yaml:"clear"`
	Objectives []objectiveFixture `yaml:"objectives"`
}

type objectiveFixture struct {
	Department   valueobject.Department    `yaml:"department"`
	Name         string                    `yaml:"name"`
	Smart        string                    `yaml:"smart"`
	Type         valueobject.ObjectiveType `yaml:"type"`
	Target       float64                   `yaml:"target"`
	NumberFormat valueobject.NumberFormat  `yaml:"numberFormat"`
	ReverseLogic bool                      `yaml:"reverseLogic"`
	OrderIndex   *int                      `yaml:"orderIndex"`
	Start        dateFixture               `yaml:"start"`
	End          dateFixture               `yaml:"end"`
	Values       []valueFixture            `yaml:"values"`
}

// dateFixture is either a calendar date relative to the current year or an
// offset in days from today.
type dateFixture struct {
	YearOffset  *int `yaml:"yearOffset"`
	Month       int  `yaml:"month"`
	Day         int  `yaml:"day"`
	DaysFromNow *int `yaml:"daysFromNow"`
}

// valueFixture is either a month of a year relative to the current one or
// an offset in months from the current month.
type valueFixture struct {
	YearOffset    *int    `yaml:"yearOffset"`
	Month         int     `yaml:"month"`
	MonthsFromNow *int    `yaml:"monthsFromNow"`
	Value         float64 `yaml:"value"`
}

func (d dateFixture) resolve(now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.DaysFromNow != nil {
		return today.AddDate(0, 0, *d.DaysFromNow), nil
	}
	if d.YearOffset == nil || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return time.Time{}, fmt.Errorf("date needs yearOffset, month and day or daysFromNow")
	}
	return time.Date(now.Year()+*d.YearOffset, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
}

func (v valueFixture) resolve(now time.Time) (month, year int, err error) {
	if v.MonthsFromNow != nil {
		t := time.Date(now.Year(), now.Month()+time.Month(*v.MonthsFromNow), 1, 0, 0, 0, 0, time.UTC)
		return int(t.Month()), t.Year(), nil
	}
	if v.YearOffset == nil || v.Month < 1 || v.Month > 12 {
		return 0, 0, fmt.Errorf("value needs yearOffset and month or monthsFromNow")
	}
	return v.Month, now.Year() + *v.YearOffset, nil
}

func loadScenario(name string) (*scenario, error) {
	data, err := fixtureFS.ReadFile(path.Join("fixtures", name+".yaml"))
	if err != nil {
		return nil, err
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return &s, nil
}

// Scenarios lists the embedded fixture names.
func Scenarios() []string {
	entries, err := fixtureFS.ReadDir("fixtures")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
