package services

import (
	"context"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService answers the read-only aggregation queries behind the
// dashboard screens. It never mutates state and talks to gorm directly.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Estatisticas carries the per-entity counts broken down by status
type Estatisticas struct {
	Clientes struct {
		Total  int64 `json:"total"`
		Ativos int64 `json:"ativos"`
	} `json:"clientes"`
	Motoristas struct {
		Total    int64 `json:"total"`
		Ativos   int64 `json:"ativos"`
		Inativos int64 `json:"inativos"`
	} `json:"motoristas"`
	Veiculos struct {
		Total       int64 `json:"total"`
		Disponiveis int64 `json:"disponiveis"`
		EmViagem    int64 `json:"emViagem"`
		Manutencao  int64 `json:"manutencao"`
	} `json:"veiculos"`
	Cargas struct {
		Total        int64 `json:"total"`
		Aguardando   int64 `json:"aguardando"`
		EmTransporte int64 `json:"emTransporte"`
		Entregues    int64 `json:"entregues"`
	} `json:"cargas"`
	Viagens struct {
		Total       int64 `json:"total"`
		Planejadas  int64 `json:"planejadas"`
		EmAndamento int64 `json:"emAndamento"`
		Concluidas  int64 `json:"concluidas"`
	} `json:"viagens"`
}

// ViagemAtiva is the joined active-trips projection
type ViagemAtiva struct {
	ID                  uint       `json:"id"`
	NumeroViagem        string     `json:"numeroViagem"`
	Status              string     `json:"status"`
	DataSaida           *time.Time `json:"dataSaida,omitempty"`
	DataPrevisaoChegada *time.Time `json:"dataPrevisaoChegada,omitempty"`
	Motorista           string     `json:"motorista"`
	Veiculo             string     `json:"veiculo"`
	Placa               string     `json:"placa"`
	NumeroProtocolo     string     `json:"numeroProtocolo"`
	DescricaoCarga      string     `json:"descricaoCarga"`
	Cliente             string     `json:"cliente"`
	CidadeEntrega       string     `json:"cidadeEntrega,omitempty"`
	EstadoEntrega       string     `json:"estadoEntrega,omitempty"`
}

// CargaRecente is the recent-cargo projection
type CargaRecente struct {
	ID              uint      `json:"id"`
	NumeroProtocolo string    `json:"numeroProtocolo"`
	DescricaoCarga  string    `json:"descricaoCarga"`
	Status          string    `json:"status"`
	Cliente         string    `json:"cliente"`
	CidadeEntrega   string    `json:"cidadeEntrega,omitempty"`
	EstadoEntrega   string    `json:"estadoEntrega,omitempty"`
	DataCadastro    time.Time `json:"dataCadastro"`
}

// ViagensMes is one bucket of the trips-by-month breakdown
type ViagensMes struct {
	Ano        int   `json:"ano"`
	Mes        int   `json:"mes"`
	Total      int64 `json:"total"`
	Concluidas int64 `json:"concluidas"`
}

// GetEstatisticas returns the entity counts per status
func (s *DashboardService) GetEstatisticas(ctx context.Context) (*Estatisticas, error) {
	db := s.db.WithContext(ctx)
	stats := &Estatisticas{}

	counts := []struct {
		model  interface{}
		query  string
		args   []interface{}
		target *int64
	}{
		{&models.Cliente{}, "", nil, &stats.Clientes.Total},
		{&models.Cliente{}, "status = ?", []interface{}{domain.ClienteAtivo}, &stats.Clientes.Ativos},
		{&models.Motorista{}, "", nil, &stats.Motoristas.Total},
		{&models.Motorista{}, "status = ?", []interface{}{domain.MotoristaAtivo}, &stats.Motoristas.Ativos},
		{&models.Veiculo{}, "", nil, &stats.Veiculos.Total},
		{&models.Veiculo{}, "status = ?", []interface{}{domain.VeiculoDisponivel}, &stats.Veiculos.Disponiveis},
		{&models.Veiculo{}, "status = ?", []interface{}{domain.VeiculoEmViagem}, &stats.Veiculos.EmViagem},
		{&models.Veiculo{}, "status = ?", []interface{}{domain.VeiculoManutencao}, &stats.Veiculos.Manutencao},
		{&models.Carga{}, "", nil, &stats.Cargas.Total},
		{&models.Carga{}, "status = ?", []interface{}{domain.CargaAguardando}, &stats.Cargas.Aguardando},
		{&models.Carga{}, "status = ?", []interface{}{domain.CargaEmTransporte}, &stats.Cargas.EmTransporte},
		{&models.Carga{}, "status = ?", []interface{}{domain.CargaEntregue}, &stats.Cargas.Entregues},
		{&models.Viagem{}, "", nil, &stats.Viagens.Total},
		{&models.Viagem{}, "status = ?", []interface{}{domain.ViagemPlanejada}, &stats.Viagens.Planejadas},
		{&models.Viagem{}, "status = ?", []interface{}{domain.ViagemEmAndamento}, &stats.Viagens.EmAndamento},
		{&models.Viagem{}, "status = ?", []interface{}{domain.ViagemConcluida}, &stats.Viagens.Concluidas},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	// inativos covers every non-active driver, Férias included
	stats.Motoristas.Inativos = stats.Motoristas.Total - stats.Motoristas.Ativos

	return stats, nil
}

// GetViagensAtivas returns planned and in-progress trips joined with their
// driver, vehicle, cargo and client, ordered by expected arrival
func (s *DashboardService) GetViagensAtivas(ctx context.Context) ([]ViagemAtiva, error) {
	var viagens []models.Viagem
	err := s.db.WithContext(ctx).
		Preload("Motorista").
		Preload("Veiculo").
		Preload("Carga.Cliente").
		Where("status IN ?", []string{domain.ViagemPlanejada, domain.ViagemEmAndamento}).
		Order("data_previsao_chegada ASC").
		Find(&viagens).Error
	if err != nil {
		return nil, err
	}

	ativas := make([]ViagemAtiva, 0, len(viagens))
	for _, v := range viagens {
		ativa := ViagemAtiva{
			ID:                  v.ID,
			NumeroViagem:        v.NumeroViagem,
			Status:              v.Status,
			DataSaida:           v.DataSaida,
			DataPrevisaoChegada: v.DataPrevisaoChegada,
		}
		if v.Motorista != nil {
			ativa.Motorista = v.Motorista.Nome
		}
		if v.Veiculo != nil {
			ativa.Veiculo = v.Veiculo.Marca + " " + v.Veiculo.Modelo
			ativa.Placa = v.Veiculo.Placa
		}
		if v.Carga != nil {
			ativa.NumeroProtocolo = v.Carga.NumeroProtocolo
			ativa.DescricaoCarga = v.Carga.DescricaoCarga
			ativa.CidadeEntrega = v.Carga.CidadeEntrega
			ativa.EstadoEntrega = v.Carga.EstadoEntrega
			if v.Carga.Cliente != nil {
				ativa.Cliente = v.Carga.Cliente.RazaoSocial
			}
		}
		ativas = append(ativas, ativa)
	}

	return ativas, nil
}

// GetUltimasCargas returns the count most recently registered cargas with
// the client name
func (s *DashboardService) GetUltimasCargas(ctx context.Context, count int) ([]CargaRecente, error) {
	if count <= 0 {
		count = 10
	}

	var cargas []models.Carga
	err := s.db.WithContext(ctx).
		Preload("Cliente").
		Order("data_cadastro DESC").
		Limit(count).
		Find(&cargas).Error
	if err != nil {
		return nil, err
	}

	recentes := make([]CargaRecente, 0, len(cargas))
	for _, c := range cargas {
		recente := CargaRecente{
			ID:              c.ID,
			NumeroProtocolo: c.NumeroProtocolo,
			DescricaoCarga:  c.DescricaoCarga,
			Status:          c.Status,
			CidadeEntrega:   c.CidadeEntrega,
			EstadoEntrega:   c.EstadoEntrega,
			DataCadastro:    c.DataCadastro,
		}
		if c.Cliente != nil {
			recente.Cliente = c.Cliente.RazaoSocial
		}
		recentes = append(recentes, recente)
	}

	return recentes, nil
}

// GetViagensPorMes returns the trip totals of the trailing six months,
// grouped by year/month in chronological order. Grouping happens in Go so
// the query stays portable across database engines.
func (s *DashboardService) GetViagensPorMes(ctx context.Context) ([]ViagensMes, error) {
	now := time.Now()
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	var viagens []models.Viagem
	err := s.db.WithContext(ctx).
		Where("data_cadastro >= ?", inicio).
		Find(&viagens).Error
	if err != nil {
		return nil, err
	}

	meses := make([]ViagensMes, 0, 6)
	for i := 0; i < 6; i++ {
		ref := inicio.AddDate(0, i, 0)
		meses = append(meses, ViagensMes{Ano: ref.Year(), Mes: int(ref.Month())})
	}

	for _, v := range viagens {
		for i := range meses {
			if v.DataCadastro.Year() == meses[i].Ano && int(v.DataCadastro.Month()) == meses[i].Mes {
				meses[i].Total++
				if v.Status == domain.ViagemConcluida {
					meses[i].Concluidas++
				}
				break
			}
		}
	}

	return meses, nil
}
