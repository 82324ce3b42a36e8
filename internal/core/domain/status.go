package domain

// Status values are stored as the Portuguese labels the frontend renders.
// Each status field is a closed set: the domain layer validates membership
// and the models carry CHECK constraints so the store rejects anything else.

// ClienteStatus represents client status
type ClienteStatus = string

const (
	ClienteAtivo   ClienteStatus = "Ativo"
	ClienteInativo ClienteStatus = "Inativo"
)

// MotoristaStatus represents driver status
type MotoristaStatus = string

const (
	MotoristaAtivo   MotoristaStatus = "Ativo"
	MotoristaInativo MotoristaStatus = "Inativo"
	MotoristaFerias  MotoristaStatus = "Férias"
)

// VeiculoStatus represents vehicle status
type VeiculoStatus = string

const (
	VeiculoDisponivel VeiculoStatus = "Disponível"
	VeiculoEmViagem   VeiculoStatus = "Em Viagem"
	VeiculoManutencao VeiculoStatus = "Manutenção"
	VeiculoInativo    VeiculoStatus = "Inativo"
)

// CargaStatus represents cargo status
type CargaStatus = string

const (
	CargaAguardando   CargaStatus = "Aguardando"
	CargaEmTransporte CargaStatus = "Em Transporte"
	CargaEntregue     CargaStatus = "Entregue"
	CargaCancelada    CargaStatus = "Cancelada"
)

// ViagemStatus represents trip status
type ViagemStatus = string

const (
	ViagemPlanejada   ViagemStatus = "Planejada"
	ViagemEmAndamento ViagemStatus = "Em Andamento"
	ViagemConcluida   ViagemStatus = "Concluída"
	ViagemCancelada   ViagemStatus = "Cancelada"
)

// Perfil values for Usuario
const (
	PerfilAdmin    = "Admin"
	PerfilUsuario  = "Usuario"
	PerfilOperador = "Operador"
)

// ValidClienteStatus reports whether s is a known client status
func ValidClienteStatus(s string) bool {
	return s == ClienteAtivo || s == ClienteInativo
}

// ValidMotoristaStatus reports whether s is a known driver status
func ValidMotoristaStatus(s string) bool {
	return s == MotoristaAtivo || s == MotoristaInativo || s == MotoristaFerias
}

// ValidVeiculoStatus reports whether s is a known vehicle status
func ValidVeiculoStatus(s string) bool {
	switch s {
	case VeiculoDisponivel, VeiculoEmViagem, VeiculoManutencao, VeiculoInativo:
		return true
	}
	return false
}

// ValidCargaStatus reports whether s is a known cargo status
func ValidCargaStatus(s string) bool {
	switch s {
	case CargaAguardando, CargaEmTransporte, CargaEntregue, CargaCancelada:
		return true
	}
	return false
}

// ValidViagemStatus reports whether s is a known trip status
func ValidViagemStatus(s string) bool {
	switch s {
	case ViagemPlanejada, ViagemEmAndamento, ViagemConcluida, ViagemCancelada:
		return true
	}
	return false
}

// cargaTransitions holds the allowed forward transitions for a cargo.
// Cancelada is reachable from any non-terminal state; terminal states
// (Entregue, Cancelada) admit no further transitions.
var cargaTransitions = map[CargaStatus][]CargaStatus{
	CargaAguardando:   {CargaEmTransporte, CargaCancelada},
	CargaEmTransporte: {CargaEntregue, CargaCancelada},
}

// CanTransitionCarga reports whether a cargo may move from one status to another
func CanTransitionCarga(from, to CargaStatus) bool {
	if from == to {
		return true
	}
	for _, next := range cargaTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
