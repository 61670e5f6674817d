// Package report serves the aggregate business metrics read from the
// warehouse: lead origin counts, enrollment conversion and delinquency. It
// only ever reads the tables the pipeline loads.
package report

// LeadOrigin is the negotiation count for one contact origin.
type LeadOrigin struct {
	Origem     string `json:"lead"`
	Quantidade int64  `json:"quantidade"`
}

// MonthlyCount is one month's aggregate from a calendar-grouped query.
type MonthlyCount struct {
	Ano     int
	Mes     int
	NomeMes string
	Total   int64
}

// Funnel is one month of the lead-to-enrollment funnel.
type Funnel struct {
	Ano             int    `json:"ano"`
	Mes             int    `json:"mes"`
	NomeMes         string `json:"nome_mes"`
	TotalLeads      int64  `json:"total_leads"`
	TotalMatriculas int64  `json:"total_matriculas"`
}

// Conversion is a funnel month with its conversion rate in percent.
type Conversion struct {
	Funnel
	TaxaConversao float64 `json:"taxa_conversao"`
}

// DelinquencyTotals is one month's raw account sums grouped by due date.
type DelinquencyTotals struct {
	Ano               int
	Mes               int
	NomeMes           string
	ValorTotal        float64
	ReceitaTotal      float64
	ValorInadimplente float64
}

// Delinquency is one month's delinquency picture with derived rates.
type Delinquency struct {
	Ano               int     `json:"ano"`
	Mes               int     `json:"mes"`
	NomeMes           string  `json:"nome_mes"`
	ValorTotal        float64 `json:"valor_total"`
	ReceitaTotal      float64 `json:"receita_total"`
	ValorInadimplente float64 `json:"valor_inadimplente"`
	TaxaInadimplencia float64 `json:"taxa_inadimplencia"`
	PercentualPagas   float64 `json:"percentual_mensalidades_pagas"`
}
