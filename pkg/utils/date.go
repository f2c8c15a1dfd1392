package utils

import "time"

// MaxAdsWindowDays é a janela máxima aceita pela API de relatórios do Google
// Ads em uma única consulta: 89 dias de retrospecto mais o dia atual, com
// margem de segurança sobre o limite de 90 dias imposto pela plataforma.
const MaxAdsWindowDays = 89

// FormatDate formata uma data como "YYYY-MM-DD" usando os próprios
// componentes de ano/mês/dia do valor, sem conversão de fuso.
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DaysBetween devolve a sequência inclusiva de dias entre start e end, em
// ordem crescente. Devolve vazio se start é posterior a end.
func DaysBetween(start, end time.Time) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ClampToMaxWindow ajusta o início do período para que a janela não exceda o
// limite da plataforma de anúncios. Períodos maiores devem ser consultados em
// várias chamadas.
func ClampToMaxWindow(start, end time.Time) time.Time {
	earliest := truncateToDay(end).AddDate(0, 0, -MaxAdsWindowDays)
	if truncateToDay(start).Before(earliest) {
		return earliest
	}
	return truncateToDay(start)
}

// StartOfYear devolve o primeiro dia do ano da data informada. Usado no modo
// year-to-date da busca de contatos.
func StartOfYear(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
