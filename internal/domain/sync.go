package domain

import "time"

// StageResult registra o desfecho de uma etapa do pipeline. Etapas que
// degradaram para vazio aparecem com Rows=0 e o erro registrado, sem
// derrubar a execução.
type StageResult struct {
	Stage string `json:"stage"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// SyncReport é o resultado de uma execução completa do pipeline.
type SyncReport struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Stages     []StageResult `json:"stages"`
}

// AddStage registra o resultado de uma etapa.
func (r *SyncReport) AddStage(stage string, rows int, err error) {
	result := StageResult{Stage: stage, Rows: rows}
	if err != nil {
		result.Error = err.Error()
	}
	r.Stages = append(r.Stages, result)
}
