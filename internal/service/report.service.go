package service

import (
	"sort"
	"transfleet/internal/db/models/postgres/public/model"
	"transfleet/internal/domain"
	"transfleet/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService exposes the read operations behind the reporting
// endpoints. When storage is unreachable the methods log the error and
// return an empty result instead of failing the request, matching how
// the dashboard consumes them.
type ReportService interface {
	ListAll() []domain.TransformerRecord
	ListUniqueCustomerNames() []string
	ListContractsForCustomer(customerName string) []domain.TransformerRecord
	ListDistinctContractIDs() []string
	CustomersWithContracts() []domain.CustomerSummary
	CountCustomersWithContracts() int
}

type reportServiceHandler struct {
	TransformerRepository repository.TransformerRepository
	Logger                *zap.SugaredLogger
}

func NewReportService(transformerRepository repository.TransformerRepository, log *zap.SugaredLogger) ReportService {
	return reportServiceHandler{
		TransformerRepository: transformerRepository,
		Logger:                log,
	}
}

func recordFromModel(m model.Customers) domain.TransformerRecord {
	record := domain.TransformerRecord{
		Power: decimal.Zero,
	}
	if m.Serial != nil {
		record.Serial = *m.Serial
	}
	if m.Contract != nil {
		record.Contract = *m.Contract
	}
	if m.Customer != nil {
		record.Customer = *m.Customer
	}
	if m.Power != nil {
		record.Power = *m.Power
	}
	return record
}

func recordsFromModels(models []model.Customers) []domain.TransformerRecord {
	records := make([]domain.TransformerRecord, 0, len(models))
	for _, m := range models {
		records = append(records, recordFromModel(m))
	}
	return records
}

// BuildCustomerSummaries reshapes flat transformer records into the
// customer -> contract -> transformer hierarchy with running totals.
// Accumulation happens in a two-level map; ordering is applied once at
// the end: contracts ascending by id within each customer, customers
// ascending by name. Transformer entries keep input order and duplicate
// serials are kept as separate units. Key fields are grouped as-is,
// the row source is responsible for filtering invalid rows.
func BuildCustomerSummaries(records []domain.TransformerRecord) []domain.CustomerSummary {
	type customerAccumulator struct {
		contracts         map[string]*domain.ContractSummary
		totalTransformers int
		totalPower        decimal.Decimal
	}

	customers := map[string]*customerAccumulator{}
	for _, record := range records {
		power := record.Power
		if power.IsNegative() {
			power = decimal.Zero
		}

		customer, ok := customers[record.Customer]
		if !ok {
			customer = &customerAccumulator{
				contracts:  map[string]*domain.ContractSummary{},
				totalPower: decimal.Zero,
			}
			customers[record.Customer] = customer
		}

		contract, ok := customer.contracts[record.Contract]
		if !ok {
			contract = &domain.ContractSummary{
				Contract:     record.Contract,
				Transformers: []domain.TransformerEntry{},
				TotalPower:   decimal.Zero,
			}
			customer.contracts[record.Contract] = contract
		}

		contract.Transformers = append(contract.Transformers, domain.TransformerEntry{
			Serial: record.Serial,
			Power:  power,
		})
		contract.TransformerCount++
		contract.TotalPower = contract.TotalPower.Add(power)

		customer.totalTransformers++
		customer.totalPower = customer.totalPower.Add(power)
	}

	out := make([]domain.CustomerSummary, 0, len(customers))
	for name, acc := range customers {
		contracts := make([]domain.ContractSummary, 0, len(acc.contracts))
		for _, contract := range acc.contracts {
			contracts = append(contracts, *contract)
		}
		sort.Slice(contracts, func(i, j int) bool {
			return contracts[i].Contract < contracts[j].Contract
		})

		out = append(out, domain.CustomerSummary{
			Customer:          name,
			Contracts:         contracts,
			UniqueContracts:   len(contracts),
			TotalTransformers: acc.totalTransformers,
			TotalPower:        acc.totalPower,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Customer < out[j].Customer
	})

	return out
}

func (h reportServiceHandler) ListAll() []domain.TransformerRecord {
	rows, err := h.TransformerRepository.List()
	if err != nil {
		h.Logger.Errorf("failed to list transformer records: %v", err)
		return []domain.TransformerRecord{}
	}

	return recordsFromModels(rows)
}

func (h reportServiceHandler) ListUniqueCustomerNames() []string {
	names, err := h.TransformerRepository.ListCustomerNames()
	if err != nil {
		h.Logger.Errorf("failed to list customer names: %v", err)
		return []string{}
	}

	return names
}

func (h reportServiceHandler) ListContractsForCustomer(customerName string) []domain.TransformerRecord {
	rows, err := h.TransformerRepository.ListByCustomer(customerName)
	if err != nil {
		h.Logger.Errorf("failed to list records for customer %s: %v", customerName, err)
		return []domain.TransformerRecord{}
	}

	return recordsFromModels(rows)
}

func (h reportServiceHandler) ListDistinctContractIDs() []string {
	ids, err := h.TransformerRepository.ListContractIDs()
	if err != nil {
		h.Logger.Errorf("failed to list contract ids: %v", err)
		return []string{}
	}

	return ids
}

func (h reportServiceHandler) CustomersWithContracts() []domain.CustomerSummary {
	return BuildCustomerSummaries(h.ListAll())
}

func (h reportServiceHandler) CountCustomersWithContracts() int {
	return len(h.CustomersWithContracts())
}
