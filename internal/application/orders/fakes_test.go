package orders

import (
	"context"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// fakeDirectory sirve páginas prefijadas y registra cada consulta.
type fakeDirectory struct {
	pages   map[int]*entity.CustomerPage
	errs    map[int]error
	calls   []int
	filters []entity.CustomerFilter
}

func (f *fakeDirectory) ListCustomers(_ context.Context, page int, filter entity.CustomerFilter) (*entity.CustomerPage, error) {
	f.calls = append(f.calls, page)
	f.filters = append(f.filters, filter)
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return &entity.CustomerPage{Page: page, TotalPages: 1}, nil
}

type fakeOrderSource struct {
	orders []entity.OrderRecord
	err    error
	calls  []int64
}

func (f *fakeOrderSource) ListOrders(_ context.Context, customerID int64) ([]entity.OrderRecord, error) {
	f.calls = append(f.calls, customerID)
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func customer(id int64, taxID, name string) entity.CustomerRecord {
	return entity.CustomerRecord{ID: id, TaxID: taxID, DisplayName: name}
}

func page(n, total int, recs ...entity.CustomerRecord) *entity.CustomerPage {
	return &entity.CustomerPage{Page: n, TotalPages: total, Records: recs}
}

func order(number any) entity.OrderRecord {
	return entity.OrderRecord{Header: &entity.OrderHeader{Number: number}}
}

func strPtr(s string) *string { return &s }
