package models

import (
	"time"

	"gorm.io/gorm"
)

// JSON field names follow the contract the React frontend already speaks
// (Portuguese camelCase). Status columns carry CHECK constraints so the
// store never holds a value outside the closed sets in core/domain.

// ============================================================
// Auth
// ============================================================

// Usuario represents the usuarios table
type Usuario struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Nome             string     `gorm:"size:100;not null" json:"nome"`
	Email            string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Login            string     `gorm:"size:100;uniqueIndex;not null" json:"login"`
	SenhaHash        string     `gorm:"size:255;not null" json:"-"`
	Cargo            string     `gorm:"size:50" json:"cargo,omitempty"`
	Perfil           string     `gorm:"size:20;default:'Usuario';check:chk_usuarios_perfil,perfil IN ('Admin','Usuario','Operador')" json:"perfil"`
	Ativo            bool       `gorm:"default:true" json:"ativo"`
	DataCriacao      time.Time  `gorm:"autoCreateTime" json:"dataCriacao"`
	DataUltimoAcesso *time.Time `json:"dataUltimoAcesso"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// UsuarioResponse DTO — never exposes the password hash
type UsuarioResponse struct {
	ID               uint       `json:"id"`
	Nome             string     `json:"nome"`
	Email            string     `json:"email"`
	Login            string     `json:"login"`
	Cargo            string     `json:"cargo,omitempty"`
	Perfil           string     `json:"perfil"`
	Ativo            bool       `json:"ativo"`
	DataCriacao      time.Time  `json:"dataCriacao"`
	DataUltimoAcesso *time.Time `json:"dataUltimoAcesso"`
}

func (u *Usuario) ToResponse() *UsuarioResponse {
	return &UsuarioResponse{
		ID:               u.ID,
		Nome:             u.Nome,
		Email:            u.Email,
		Login:            u.Login,
		Cargo:            u.Cargo,
		Perfil:           u.Perfil,
		Ativo:            u.Ativo,
		DataCriacao:      u.DataCriacao,
		DataUltimoAcesso: u.DataUltimoAcesso,
	}
}

// ============================================================
// Cadastros
// ============================================================

// Cliente represents the clientes table
type Cliente struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RazaoSocial     string    `gorm:"size:200;not null" json:"razaoSocial" validate:"required"`
	NomeFantasia    string    `gorm:"size:200" json:"nomeFantasia,omitempty"`
	CNPJ            *string   `gorm:"size:20;uniqueIndex" json:"cnpj,omitempty"`
	CPF             *string   `gorm:"size:14;uniqueIndex" json:"cpf,omitempty"`
	Telefone        string    `gorm:"size:20" json:"telefone,omitempty"`
	Email           string    `gorm:"size:100" json:"email,omitempty" validate:"omitempty,email"`
	Endereco        string    `gorm:"size:255" json:"endereco,omitempty"`
	Cidade          string    `gorm:"size:100" json:"cidade,omitempty"`
	Estado          string    `gorm:"size:2" json:"estado,omitempty"`
	CEP             string    `gorm:"size:10" json:"cep,omitempty"`
	Contato         string    `gorm:"size:100" json:"contato,omitempty"`
	Status          string    `gorm:"size:20;default:'Ativo';index;check:chk_clientes_status,status IN ('Ativo','Inativo')" json:"status"`
	DataCadastro    time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
	DataAtualizacao time.Time `gorm:"autoUpdateTime" json:"dataAtualizacao"`

	Cargas []Carga `gorm:"foreignKey:ClienteID" json:"cargas,omitempty"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// Motorista represents the motoristas table
type Motorista struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"size:100;not null" json:"nome" validate:"required"`
	CPF             string     `gorm:"size:14;uniqueIndex;not null" json:"cpf" validate:"required"`
	CNH             string     `gorm:"size:20;uniqueIndex;not null" json:"cnh" validate:"required"`
	CategoriaCNH    string     `gorm:"size:5;not null" json:"categoriaCNH" validate:"required"`
	ValidadeCNH     time.Time  `gorm:"not null" json:"validadeCNH" validate:"required"`
	Telefone        string     `gorm:"size:20" json:"telefone,omitempty"`
	Email           string     `gorm:"size:100" json:"email,omitempty" validate:"omitempty,email"`
	Endereco        string     `gorm:"size:255" json:"endereco,omitempty"`
	DataNascimento  *time.Time `json:"dataNascimento,omitempty"`
	DataAdmissao    time.Time  `gorm:"not null" json:"dataAdmissao" validate:"required"`
	Status          string     `gorm:"size:20;default:'Ativo';index;check:chk_motoristas_status,status IN ('Ativo','Inativo','Férias')" json:"status"`
	Observacoes     string     `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro    time.Time  `gorm:"autoCreateTime" json:"dataCadastro"`
	DataAtualizacao time.Time  `gorm:"autoUpdateTime" json:"dataAtualizacao"`

	Viagens []Viagem `gorm:"foreignKey:MotoristaID" json:"viagens,omitempty"`
}

func (Motorista) TableName() string {
	return "motoristas"
}

// Veiculo represents the veiculos table
type Veiculo struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Placa            string     `gorm:"size:10;uniqueIndex;not null" json:"placa" validate:"required"`
	Modelo           string     `gorm:"size:100;not null" json:"modelo" validate:"required"`
	Marca            string     `gorm:"size:100;not null" json:"marca" validate:"required"`
	AnoFabricacao    int        `gorm:"not null" json:"anoFabricacao" validate:"required,gt=0"`
	TipoVeiculo      string     `gorm:"size:50;not null;index" json:"tipoVeiculo" validate:"required"`
	CapacidadeCarga  float64    `gorm:"not null" json:"capacidadeCarga" validate:"required,gt=0"`
	CapacidadeVolume *float64   `json:"capacidadeVolume,omitempty"`
	Renavam          string     `gorm:"size:20" json:"renavam,omitempty"`
	Chassi           string     `gorm:"size:30" json:"chassi,omitempty"`
	KmAtual          int        `json:"kmAtual"`
	Status           string     `gorm:"size:20;default:'Disponível';index;check:chk_veiculos_status,status IN ('Disponível','Em Viagem','Manutenção','Inativo')" json:"status"`
	DataAquisicao    *time.Time `json:"dataAquisicao,omitempty"`
	Observacoes      string     `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro     time.Time  `gorm:"autoCreateTime" json:"dataCadastro"`
	DataAtualizacao  time.Time  `gorm:"autoUpdateTime" json:"dataAtualizacao"`

	Viagens     []Viagem     `gorm:"foreignKey:VeiculoID" json:"viagens,omitempty"`
	Manutencoes []Manutencao `gorm:"foreignKey:VeiculoID;constraint:OnDelete:CASCADE" json:"manutencoes,omitempty"`
}

func (Veiculo) TableName() string {
	return "veiculos"
}

// ============================================================
// Operação
// ============================================================

// Carga represents the cargas table
type Carga struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	NumeroProtocolo     string     `gorm:"size:30;uniqueIndex;not null" json:"numeroProtocolo"`
	ClienteID           uint       `gorm:"not null;index" json:"clienteId" validate:"required"`
	TipoCarga           string     `gorm:"size:50" json:"tipoCarga,omitempty"`
	DescricaoCarga      string     `gorm:"size:255;not null" json:"descricaoCarga" validate:"required"`
	PesoCarga           float64    `json:"pesoCarga"`
	VolumeCarga         *float64   `json:"volumeCarga,omitempty"`
	ValorCarga          *float64   `json:"valorCarga,omitempty"`
	EnderecoColeta      string     `gorm:"size:255" json:"enderecoColeta,omitempty"`
	CidadeColeta        string     `gorm:"size:100" json:"cidadeColeta,omitempty"`
	EstadoColeta        string     `gorm:"size:2" json:"estadoColeta,omitempty"`
	EnderecoEntrega     string     `gorm:"size:255" json:"enderecoEntrega,omitempty"`
	CidadeEntrega       string     `gorm:"size:100" json:"cidadeEntrega,omitempty"`
	EstadoEntrega       string     `gorm:"size:2" json:"estadoEntrega,omitempty"`
	DataPrevistaColeta  *time.Time `json:"dataPrevistaColeta,omitempty"`
	DataPrevistaEntrega *time.Time `json:"dataPrevistaEntrega,omitempty"`
	Status              string     `gorm:"size:20;default:'Aguardando';index;check:chk_cargas_status,status IN ('Aguardando','Em Transporte','Entregue','Cancelada')" json:"status"`
	Observacoes         string     `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro        time.Time  `gorm:"autoCreateTime" json:"dataCadastro"`
	DataAtualizacao     time.Time  `gorm:"autoUpdateTime" json:"dataAtualizacao"`

	Cliente    *Cliente               `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT" json:"cliente,omitempty"`
	Viagens    []Viagem               `gorm:"foreignKey:CargaID" json:"viagens,omitempty"`
	Historicos []HistoricoStatusCarga `gorm:"foreignKey:CargaID;constraint:OnDelete:CASCADE" json:"historicos,omitempty"`
}

func (Carga) TableName() string {
	return "cargas"
}

// Viagem represents the viagens table
type Viagem struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	NumeroViagem        string     `gorm:"size:30;uniqueIndex;not null" json:"numeroViagem" validate:"required"`
	CargaID             uint       `gorm:"not null;index" json:"cargaId" validate:"required"`
	VeiculoID           uint       `gorm:"not null;index" json:"veiculoId" validate:"required"`
	MotoristaID         uint       `gorm:"not null;index" json:"motoristaId" validate:"required"`
	DataSaida           *time.Time `json:"dataSaida,omitempty"`
	DataPrevisaoChegada *time.Time `json:"dataPrevisaoChegada,omitempty"`
	DataChegadaReal     *time.Time `json:"dataChegadaReal,omitempty"`
	KmInicial           *int       `json:"kmInicial,omitempty"`
	KmFinal             *int       `json:"kmFinal,omitempty"`
	DistanciaPercorrida *int       `json:"distanciaPercorrida,omitempty"`
	ValorFrete          *float64   `json:"valorFrete,omitempty"`
	Status              string     `gorm:"size:20;default:'Planejada';index;check:chk_viagens_status,status IN ('Planejada','Em Andamento','Concluída','Cancelada')" json:"status"`
	Observacoes         string     `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro        time.Time  `gorm:"autoCreateTime" json:"dataCadastro"`
	DataAtualizacao     time.Time  `gorm:"autoUpdateTime" json:"dataAtualizacao"`

	Carga     *Carga          `gorm:"foreignKey:CargaID;constraint:OnDelete:RESTRICT" json:"carga,omitempty"`
	Veiculo   *Veiculo        `gorm:"foreignKey:VeiculoID;constraint:OnDelete:RESTRICT" json:"veiculo,omitempty"`
	Motorista *Motorista      `gorm:"foreignKey:MotoristaID;constraint:OnDelete:RESTRICT" json:"motorista,omitempty"`
	Despesas  []DespesaViagem `gorm:"foreignKey:ViagemID;constraint:OnDelete:CASCADE" json:"despesas,omitempty"`
}

func (Viagem) TableName() string {
	return "viagens"
}

// DespesaViagem represents the despesas_viagem table
type DespesaViagem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ViagemID     uint      `gorm:"not null;index" json:"viagemId"`
	TipoDespesa  string    `gorm:"size:50;not null" json:"tipoDespesa" validate:"required"`
	Descricao    string    `gorm:"size:255" json:"descricao,omitempty"`
	Valor        float64   `gorm:"not null" json:"valor" validate:"required,gt=0"`
	DataDespesa  time.Time `json:"dataDespesa"`
	Observacoes  string    `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
}

func (DespesaViagem) TableName() string {
	return "despesas_viagem"
}

// Manutencao represents the manutencoes table
type Manutencao struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	VeiculoID           uint       `gorm:"not null;index" json:"veiculoId"`
	TipoManutencao      string     `gorm:"size:50;not null" json:"tipoManutencao" validate:"required"`
	DescricaoManutencao string     `gorm:"size:255;not null" json:"descricaoManutencao" validate:"required"`
	DataManutencao      time.Time  `json:"dataManutencao"`
	KmManutencao        *int       `json:"kmManutencao,omitempty"`
	ValorManutencao     *float64   `json:"valorManutencao,omitempty"`
	Oficina             string     `gorm:"size:100" json:"oficina,omitempty"`
	ProximaManutencao   *time.Time `json:"proximaManutencao,omitempty"`
	Status              string     `gorm:"size:20;default:'Concluída'" json:"status"`
	Observacoes         string     `gorm:"type:text" json:"observacoes,omitempty"`
	DataCadastro        time.Time  `gorm:"autoCreateTime" json:"dataCadastro"`
}

func (Manutencao) TableName() string {
	return "manutencoes"
}

// HistoricoStatusCarga represents the historico_status_cargas table.
// Rows are append-only: statusAnterior is null only on the first entry.
type HistoricoStatusCarga struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CargaID            uint      `gorm:"not null;index" json:"cargaId"`
	StatusAnterior     *string   `gorm:"size:20" json:"statusAnterior"`
	StatusNovo         string    `gorm:"size:20;not null" json:"statusNovo"`
	DataMudanca        time.Time `gorm:"autoCreateTime" json:"dataMudanca"`
	LocalizacaoAtual   string    `gorm:"size:255" json:"localizacaoAtual,omitempty"`
	Observacoes        string    `gorm:"size:255" json:"observacoes,omitempty"`
	UsuarioResponsavel string    `gorm:"size:100" json:"usuarioResponsavel,omitempty"`
}

func (HistoricoStatusCarga) TableName() string {
	return "historico_status_cargas"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates/updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Usuario{},
		&Cliente{},
		&Motorista{},
		&Veiculo{},
		&Carga{},
		&Viagem{},
		&Manutencao{},
		&DespesaViagem{},
		&HistoricoStatusCarga{},
	)
}
