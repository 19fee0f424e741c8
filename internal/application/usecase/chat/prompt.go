package chat

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

type promptObjective struct {
	Name            string  `json:"nome"`
	Description     string  `json:"descrizione"`
	Type            string  `json:"tipo"`
	Target          string  `json:"target"`
	CurrentValue    string  `json:"valoreAttuale"`
	ProgressPercent float64 `json:"progresso"`
	ExpectedPercent float64 `json:"progressoAtteso"`
	Status          string  `json:"stato"`
	Health          string  `json:"salute"`
	Trend           string  `json:"andamento"`
	ReverseLogic    bool    `json:"logicaInversa"`
	EndDate         string  `json:"scadenza"`
	DaysUntilExpiry int     `json:"giorniAllaScadenza"`
	LastUpdate      string  `json:"ultimoAggiornamento,omitempty"`
}

type promptDepartment struct {
	Department      string            `json:"reparto"`
	TotalObjectives int               `json:"totaleObiettivi"`
	AverageProgress float64           `json:"progressoMedio"`
	ByHealth        map[string]int    `json:"perSalute"`
	TopPerformer    string            `json:"migliore,omitempty"`
	WorstPerformer  string            `json:"peggiore,omitempty"`
	Objectives      []promptObjective `json:"obiettivi"`
}

func toPromptDepartment(a *progress.DepartmentAnalytics) promptDepartment {
	byHealth := make(map[string]int, len(a.Summary.ObjectivesByHealthStatus))
	for h, n := range a.Summary.ObjectivesByHealthStatus {
		byHealth[string(h)] = n
	}

	out := promptDepartment{
		Department:      string(a.Summary.Department),
		TotalObjectives: a.Summary.TotalObjectives,
		AverageProgress: a.Summary.OverallProgressAverage,
		ByHealth:        byHealth,
		Objectives:      make([]promptObjective, 0, len(a.Objectives)),
	}
	if p := a.Summary.TopPerformer; p != nil {
		out.TopPerformer = fmt.Sprintf("%s (%.2f%%)", p.Name, p.ProgressPercent)
	}
	if p := a.Summary.WorstPerformer; p != nil {
		out.WorstPerformer = fmt.Sprintf("%s (%.2f%%)", p.Name, p.ProgressPercent)
	}

	for _, o := range a.Objectives {
		obj := o.Objective
		item := promptObjective{
			Name:            o.ObjectiveName,
			Description:     obj.SmartDescription,
			Type:            string(obj.Type),
			Target:          valueobject.FormatValue(obj.Target, obj.NumberFormat),
			CurrentValue:    valueobject.FormatValue(o.Result.CurrentValue, obj.NumberFormat),
			ProgressPercent: o.Result.ProgressPercent,
			ExpectedPercent: o.ExpectedProgressPercent,
			Status:          string(o.Result.Status),
			Health:          string(o.HealthStatus),
			Trend:           string(o.Trend),
			ReverseLogic:    obj.ReverseLogic,
			EndDate:         obj.EndDate.Format(entity.DateLayout),
			DaysUntilExpiry: o.Result.DaysUntilExpiry,
		}
		if o.LastUpdate != nil {
			item.LastUpdate = fmt.Sprintf("%s: %s", o.LastUpdate.Month, valueobject.FormatValue(o.LastUpdate.Value, obj.NumberFormat))
		}
		out.Objectives = append(out.Objectives, item)
	}
	return out
}

// buildSystemPrompt renders the assistant instructions around the analytics
// snapshot. scope names the department, or is empty for the whole company.
func buildSystemPrompt(scope string, departments []*progress.DepartmentAnalytics, now time.Time) (string, error) {
	payload := make([]promptDepartment, len(departments))
	for i, d := range departments {
		payload[i] = toPromptDepartment(d)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode analytics: %w", err)
	}

	var sb strings.Builder
	if scope != "" {
		sb.WriteString(fmt.Sprintf("Sei l'analista KPI del reparto %s. Rispondi alle domande sugli obiettivi del reparto usando solo i dati forniti.\n", scope))
	} else {
		sb.WriteString("Sei l'analista KPI dell'azienda. Rispondi alle domande sugli obiettivi di tutti i reparti usando solo i dati forniti.\n")
	}
	sb.WriteString(fmt.Sprintf("Data odierna: %s.\n\n", valueobject.FormatItalianDate(now)))

	sb.WriteString(`REGOLE:
- Rispondi sempre in italiano, in modo conciso e professionale.
- Non inventare obiettivi o valori che non compaiono nei dati.
- Riporta le percentuali con due decimali e il simbolo %.
- Mantieni il formato dei valori cosi come appare nei dati (valuta in euro, percentuali, numeri).
- Per gli obiettivi con logicaInversa un valore piu basso del target e un buon risultato.
- Confronta progresso e progressoAtteso per giudicare se un obiettivo e in linea con i tempi.
- Segnala gli obiettivi scaduti o in scadenza nei prossimi 30 giorni quando pertinente.
- Usa elenchi puntati brevi; niente tabelle in markdown.

DATI:
`)
	sb.Write(data)
	sb.WriteString("\n")

	return sb.String(), nil
}
