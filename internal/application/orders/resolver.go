// Package orders resuelve clientes en el directorio de Omie y arma el resumen de
// sus pedidos más recientes.
package orders

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
	"github.com/jhoicas/omie-pedidos-ia/pkg/taxid"
)

var (
	// ErrEmptyFirstPage la primera y única página llegó vacía.
	ErrEmptyFirstPage = fmt.Errorf("%w: sin resultados en la primera página", domain.ErrNotFound)
	// ErrExhausted se recorrieron todas las páginas sin candidato.
	ErrExhausted = fmt.Errorf("%w: sin resultados tras recorrer todas las páginas", domain.ErrNotFound)
)

// PageError fallo del upstream al leer una página concreta del directorio.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("directorio de clientes, página %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// Resolver resuelve un CustomerQuery a un único registro del directorio.
// No guarda estado entre llamadas.
type Resolver struct {
	dir ports.CustomerDirectory
	log *logger.Logger
}

// NewResolver construye el resolver sobre el puerto del directorio.
func NewResolver(dir ports.CustomerDirectory, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{dir: dir, log: log.Child("component", "resolver")}
}

// Resolve recorre el directorio página a página.
//
// Con CNPJ/CPF la búsqueda termina en la página del primer acierto directo; el resto de
// esa página se revisa igual y un segundo registro con el mismo CNPJ/CPF devuelve
// *domain.AmbiguousMatchError. No se piden más páginas después del acierto. Con nombre
// fantasía se recorren todas las páginas acumulando coincidencias por subcadena sin
// distinguir mayúsculas. La ciudad solo viaja como filtro server-side.
func (r *Resolver) Resolve(ctx context.Context, q entity.CustomerQuery) (*entity.CustomerRecord, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("%w: se requiere CNPJ/CPF, nombre fantasía o ciudad", domain.ErrInvalidInput)
	}

	taxID := q.NormalizedTaxID()
	name := strings.TrimSpace(q.DisplayName)
	city := strings.TrimSpace(q.City)

	if taxID != "" {
		if err := taxid.Validate(taxID); err != nil {
			r.log.Warn().Err(err).Str("cnpj_cpf", taxID).Msg("dígito verificador inválido; se consulta igual")
		}
	}

	filter := buildFilter(taxID, name, city)
	fold := cases.Fold()
	foldedName := fold.String(name)

	var (
		direct     *entity.CustomerRecord
		nameHits   []entity.CustomerRecord
		totalPages = 1
	)

	for page := 1; page <= totalPages; page++ {
		r.log.Debug().Int("page", page).Int("total_pages", totalPages).Msg("consultando directorio")

		res, err := r.dir.ListCustomers(ctx, page, filter)
		if err != nil {
			return nil, &PageError{Page: page, Err: err}
		}

		// El total de páginas solo se lee en la primera respuesta.
		if page == 1 {
			totalPages = max(res.TotalPages, 1)
		}

		for i := range res.Records {
			rec := res.Records[i]
			switch {
			case taxID != "" && rec.NormalizedTaxID() == taxID:
				if direct != nil {
					return nil, &domain.AmbiguousMatchError{Hint: q.TaxID, ByTaxID: true}
				}
				direct = &rec
			case taxID == "" && name != "" && strings.Contains(fold.String(rec.DisplayName), foldedName):
				nameHits = append(nameHits, rec)
			}
		}

		if direct != nil {
			r.log.Debug().Int("page", page).Int64("customer_id", direct.ID).Msg("acierto directo por CNPJ/CPF")
			return direct, nil
		}

		if len(res.Records) == 0 && page == 1 && totalPages == 1 {
			return nil, ErrEmptyFirstPage
		}
	}

	// Solo ciudad: sin filtrado en cliente, nameHits queda vacío.
	return pickByName(name, nameHits, r.log)
}

// pickByName decide entre las coincidencias por nombre acumuladas en todas las páginas.
func pickByName(name string, hits []entity.CustomerRecord, log *logger.Logger) (*entity.CustomerRecord, error) {
	switch len(hits) {
	case 0:
		return nil, ErrExhausted
	case 1:
		return &hits[0], nil
	}

	distinct := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		distinct[h.DisplayName] = struct{}{}
	}
	if len(distinct) == 1 {
		log.Debug().Int("records", len(hits)).Str("nome_fantasia", hits[0].DisplayName).
			Msg("varios registros con el mismo nombre fantasía; se usa el primero")
		return &hits[0], nil
	}
	return nil, &domain.AmbiguousMatchError{Hint: name, Distinct: len(distinct)}
}

// buildFilter prioriza CNPJ/CPF, luego nombre, luego ciudad.
func buildFilter(taxID, name, city string) entity.CustomerFilter {
	switch {
	case taxID != "":
		return entity.CustomerFilter{TaxID: taxID}
	case name != "":
		return entity.CustomerFilter{DisplayName: name}
	case city != "":
		return entity.CustomerFilter{City: city}
	default:
		return entity.CustomerFilter{}
	}
}
