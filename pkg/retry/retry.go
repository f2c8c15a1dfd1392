package retry

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StatusCoder é implementado pelos erros dos integradores que carregam o
// status HTTP da resposta upstream.
type StatusCoder interface {
	StatusCode() int
}

// Policy executa chamadas remotas com retries limitados e backoff
// exponencial com jitter. Sleep e Jitter são injetáveis para que os testes
// não durmam de verdade.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration

	sleep  func(time.Duration)
	jitter func() time.Duration
}

// New cria uma política de retry com sleep real e jitter aleatório de até
// 500ms, para evitar que chamadas paralelas re-tentem em sincronia.
func New(maxRetries int, baseDelay time.Duration) *Policy {
	return &Policy{
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
		sleep:      time.Sleep,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(500 * time.Millisecond)))
		},
	}
}

// WithClock substitui o sleep e o jitter. Usado nos testes.
func (p *Policy) WithClock(sleep func(time.Duration), jitter func() time.Duration) *Policy {
	p.sleep = sleep
	p.jitter = jitter
	return p
}

// Do executa fn até obter sucesso, esgotar as tentativas ou encontrar um
// erro terminal. O último erro é devolvido sem embrulho, para que o chamador
// possa inspecionar a causa original.
func (p *Policy) Do(operation string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		status, hasStatus := StatusFromError(err)

		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"attempt":   attempt + 1,
			"status":    status,
			"error":     truncate(err.Error(), 200),
		}).Error("Falha em chamada remota")

		if hasStatus && isTerminal(status) {
			logrus.WithFields(logrus.Fields{
				"operation": operation,
				"status":    status,
			}).Error("Erro não-retryable. Abortando tentativas.")
			return err
		}

		// 429, 5xx e erros sem status (possivelmente transitórios) são
		// re-tentados até o limite
		if attempt < p.MaxRetries {
			wait := p.backoff(attempt)
			logrus.WithFields(logrus.Fields{
				"operation": operation,
				"wait":      wait.String(),
			}).Warn("Aguardando antes da próxima tentativa")
			p.sleep(wait)
		}
	}

	logrus.WithFields(logrus.Fields{
		"operation":   operation,
		"max_retries": p.MaxRetries,
	}).Error("Número máximo de tentativas excedido")

	return lastErr
}

func (p *Policy) backoff(attempt int) time.Duration {
	base := time.Duration(float64(p.BaseDelay) * math.Pow(2, float64(attempt)))
	return base + p.jitter()
}

// StatusFromError extrai o status HTTP de um erro, se houver. Cobre tanto o
// erro direto do integrador quanto erros embrulhados com pkg/errors.
func StatusFromError(err error) (int, bool) {
	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode(), true
	}
	return 0, false
}

// isTerminal indica erros de requisição malformada ou permissão que nenhuma
// nova tentativa resolve.
func isTerminal(status int) bool {
	switch status {
	case 400, 401, 403, 404:
		return true
	}
	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
