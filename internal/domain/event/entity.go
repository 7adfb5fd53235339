package event

import (
	"time"
)

// Event is an immutable history entry attributed to an employee. Events
// outlive the employee: deleting a worker nulls the reference instead of
// cascading.
type Event struct {
	ID         string
	Timestamp  time.Time
	Text       string
	Type       Type
	Category   Category
	Sector     string
	Impact     Impact
	EmployeeID *string
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}

type Type string

const (
	TypeFalta             Type = "falta"
	TypeAtestado          Type = "atestado"
	TypeAfastamento       Type = "afastamento"
	TypeFeriasHist        Type = "ferias_hist"
	TypeDemissao          Type = "demissao"
	TypeAdvertencia       Type = "advertencia"
	TypeAllocacao         Type = "allocacao"
	TypeMovimentacao      Type = "movimentacao"
	TypeRemocao           Type = "remocao"
	TypeAlteracaoCadastro Type = "alteracao_cadastro"
	TypeRetorno           Type = "retorno"
	TypeRetornoFerias     Type = "retorno_ferias"
	TypeRetornoAtestado   Type = "retorno_atestado"
	TypeOcorrencia        Type = "ocorrencia"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFalta, TypeAtestado, TypeAfastamento, TypeFeriasHist, TypeDemissao,
		TypeAdvertencia, TypeAllocacao, TypeMovimentacao, TypeRemocao,
		TypeAlteracaoCadastro, TypeRetorno, TypeRetornoFerias,
		TypeRetornoAtestado, TypeOcorrencia:
		return true
	}
	return false
}

type Category string

const (
	CategoryPessoas        Category = "pessoas"
	CategoryInfraestrutura Category = "infraestrutura"
	CategoryProcesso       Category = "processo"
	CategoryFornecedor     Category = "fornecedor"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPessoas, CategoryInfraestrutura, CategoryProcesso, CategoryFornecedor:
		return true
	}
	return false
}

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}
