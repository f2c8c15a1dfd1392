package sheets

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
)

// Sink escreve tabelas na planilha. Cada aba é substituída por inteiro:
// limpa e reescreve, nunca acrescenta.
type Sink struct {
	cfg    *config.Config
	Client sheetsclient.Client
	retry  *retry.Policy
}

func New(cfg *config.Config, client sheetsclient.Client, retryPolicy *retry.Policy) *Sink {
	return &Sink{
		cfg:    cfg,
		Client: client,
		retry:  retryPolicy,
	}
}

// WriteSheet limpa a aba e escreve o cabeçalho seguido das linhas, na ordem
// recebida. A falha na limpeza não impede a escrita: o conteúdo novo cobre o
// antigo a partir de A1. Sem linhas, a aba fica só com o cabeçalho.
func (s *Sink) WriteSheet(sheetName string, headers []string, rows [][]interface{}) error {
	clearRange := fmt.Sprintf("'%s'!A:ZZ", sheetName)

	err := s.retry.Do("sheets_clear", func() error {
		return s.Client.ClearRange(clearRange)
	})
	if err != nil {
		logrus.WithError(err).WithField("sheet", sheetName).
			Warn("Falha ao limpar a aba, escrevendo por cima")
	}

	values := make([][]interface{}, 0, len(rows)+1)

	headerRow := make([]interface{}, len(headers))
	for i, header := range headers {
		headerRow[i] = header
	}
	values = append(values, headerRow)
	values = append(values, rows...)

	updateRange := fmt.Sprintf("'%s'!A1", sheetName)

	err = s.retry.Do("sheets_update", func() error {
		return s.Client.UpdateRange(updateRange, values)
	})
	if err != nil {
		logrus.WithError(err).WithField("sheet", sheetName).
			Error("Erro ao escrever na planilha")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sheet": sheetName,
		"rows":  len(rows),
	}).Info("Aba da planilha atualizada")

	return nil
}
