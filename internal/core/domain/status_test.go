package domain

import "testing"

func TestCanTransitionCarga(t *testing.T) {
	tests := []struct {
		name string
		from CargaStatus
		to   CargaStatus
		want bool
	}{
		{"aguardando to em transporte", CargaAguardando, CargaEmTransporte, true},
		{"aguardando to cancelada", CargaAguardando, CargaCancelada, true},
		{"aguardando to entregue skips transport", CargaAguardando, CargaEntregue, false},
		{"em transporte to entregue", CargaEmTransporte, CargaEntregue, true},
		{"em transporte to cancelada", CargaEmTransporte, CargaCancelada, true},
		{"em transporte back to aguardando", CargaEmTransporte, CargaAguardando, false},
		{"entregue is terminal", CargaEntregue, CargaEmTransporte, false},
		{"entregue to cancelada", CargaEntregue, CargaCancelada, false},
		{"cancelada is terminal", CargaCancelada, CargaAguardando, false},
		{"same status is a no-op", CargaEntregue, CargaEntregue, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionCarga(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionCarga(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidStatuses(t *testing.T) {
	if !ValidCargaStatus(CargaAguardando) {
		t.Error("Aguardando should be a valid cargo status")
	}
	if ValidCargaStatus("Perdida") {
		t.Error("unknown cargo status should be invalid")
	}
	if !ValidViagemStatus(ViagemEmAndamento) {
		t.Error("Em Andamento should be a valid trip status")
	}
	if ValidViagemStatus("") {
		t.Error("empty trip status should be invalid")
	}
	if !ValidVeiculoStatus(VeiculoManutencao) {
		t.Error("Manutenção should be a valid vehicle status")
	}
	if !ValidMotoristaStatus(MotoristaFerias) {
		t.Error("Férias should be a valid driver status")
	}
	if !ValidClienteStatus(ClienteInativo) {
		t.Error("Inativo should be a valid client status")
	}
}
