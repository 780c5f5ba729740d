package models

import (
	"context"
	"fmt"
	"time"

	"github.com/coderi421/routemgr/db"
)

const SalesPersonTable = "salesperson"

var salesPersonColumns = []string{"id", "name", "email", "created", "modified", "active"}

// now is replaced in tests.
var now = time.Now

// SalesPerson is looked up by id once it is known, by its unique email before.
type SalesPerson struct {
	BaseModel
	Name  string
	Email string
}

var _ Record = (*SalesPerson)(nil)

func NewSalesPerson(name, email string) *SalesPerson {
	return &SalesPerson{
		BaseModel: NewBaseModel(SalesPersonTable),
		Name:      name,
		Email:     email,
	}
}

func (s *SalesPerson) lookup() db.Predicate {
	if s.Persisted() {
		return db.C("id").EQ(s.ID())
	}
	return db.C("email").EQ(s.Email)
}

// ExistsInDB reports whether exactly one row matches and adopts its id.
func (s *SalesPerson) ExistsInDB(ctx context.Context, store Store) (bool, error) {
	rows, err := store.SelectRows(ctx, s.TableName(), salesPersonColumns, s.lookup())
	if err != nil {
		return false, fmt.Errorf("models: look up salesperson: %w", err)
	}
	store.Logger().Debug().Int("rows", len(rows)).Str("email", s.Email).Msg("SalesPerson.ExistsInDB")

	switch len(rows) {
	case 0:
		return false, nil
	case 1:
		id, err := toInt64(rows[0]["id"])
		if err != nil {
			return false, err
		}
		if err = s.SetID(id); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d rows for %s", ErrAmbiguousMatch, len(rows), s.Email)
	}
}

// IsActive reads the active flag back from the store.
func (s *SalesPerson) IsActive(ctx context.Context, store Store) (bool, error) {
	if !s.Persisted() {
		found, err := s.ExistsInDB(ctx, store)
		if err != nil {
			return false, err
		}
		if !found {
			return false, ErrNotFound
		}
	}
	rows, err := store.SelectRows(ctx, s.TableName(), []string{"active"}, db.C("id").EQ(s.ID()))
	if err != nil {
		return false, fmt.Errorf("models: read salesperson state: %w", err)
	}
	if len(rows) == 0 {
		return false, ErrNotFound
	}
	return toBool(rows[0]["active"])
}

// InsertIntoDB stamps created in UTC, writes the row and adopts the assigned id.
func (s *SalesPerson) InsertIntoDB(ctx context.Context, store Store) error {
	if s.Persisted() {
		return fmt.Errorf("%w: %s", ErrAlreadyPersisted, s)
	}

	prev := s.Created
	created := now().UTC()
	s.Created = &created

	res := store.InsertInto(ctx, s.TableName(),
		[]string{"name", "email", "created", "active"},
		[]any{s.Name, s.Email, created, s.Active})
	if err := res.Err(); err != nil {
		s.Created = prev
		return fmt.Errorf("models: insert salesperson: %w", err)
	}

	found, err := s.ExistsInDB(ctx, store)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: inserted salesperson %s", ErrNotFound, s.Email)
	}
	return nil
}

// UpdateDataInDB writes every mutable field. The record must exist first.
func (s *SalesPerson) UpdateDataInDB(ctx context.Context, store Store) error {
	found, err := s.ExistsInDB(ctx, store)
	if err != nil {
		return err
	}
	if !found {
		store.Logger().Error().Stringer("salesperson", s).Msg("salesperson was not found in DB")
		return fmt.Errorf("%w: %s", ErrNotFound, s)
	}

	prev := s.Modified
	modified := now().UTC()
	s.Modified = &modified

	res := store.UpdateRowsByMap(ctx, s.TableName(), s.queryMap(), db.C("id").EQ(s.ID()))
	if err = res.Err(); err != nil {
		s.Modified = prev
		return fmt.Errorf("models: update salesperson: %w", err)
	}
	return nil
}

// SoftDeleteDataInDB marks the row inactive. The row stays selectable.
func (s *SalesPerson) SoftDeleteDataInDB(ctx context.Context, store Store) error {
	prev := s.Active
	s.Active = false
	if err := s.UpdateDataInDB(ctx, store); err != nil {
		s.Active = prev
		return err
	}
	store.Logger().Info().Stringer("salesperson", s).Msg("salesperson was (soft) deleted from DB")
	return nil
}

func (s *SalesPerson) queryMap() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"email":    s.Email,
		"modified": timeValue(s.Modified),
		"active":   s.Active,
	}
}

// ExportMap returns {"table_name": ..., "row_data": {...}}.
func (s *SalesPerson) ExportMap() (map[string]any, error) {
	return map[string]any{
		"table_name": s.TableName(),
		"row_data": map[string]any{
			"id":       s.ID(),
			"name":     s.Name,
			"email":    s.Email,
			"created":  timeValue(s.Created),
			"modified": timeValue(s.Modified),
			"active":   s.Active,
		},
	}, nil
}

// ImportMap accepts the ExportMap envelope or a bare row, such as a db.Row
// converted to map[string]any. A table_name other than salesperson is
// rejected in either form. Nothing is changed when a value is invalid.
func (s *SalesPerson) ImportMap(data map[string]any) error {
	if tn, ok := data["table_name"]; ok && tn != s.TableName() {
		return fmt.Errorf("%w: %v", ErrTableMismatch, tn)
	}
	row := data
	if rd, ok := data["row_data"]; ok {
		switch m := rd.(type) {
		case map[string]any:
			row = m
		case db.Row:
			row = m
		default:
			return fmt.Errorf("models: row_data must be a map, got %T", rd)
		}
	}

	next := *s
	for k, v := range row {
		var err error
		switch k {
		case "id":
			var id int64
			if id, err = toInt64(v); err == nil {
				if id == UnpersistedID {
					next.id = UnpersistedID
				} else {
					err = next.SetID(id)
				}
			}
		case "name":
			next.Name, err = toString(v)
		case "email":
			next.Email, err = toString(v)
		case "created":
			next.Created, err = toTimePtr(v)
		case "modified":
			next.Modified, err = toTimePtr(v)
		case "active":
			next.Active, err = toBool(v)
		}
		if err != nil {
			return fmt.Errorf("models: import %s: %w", k, err)
		}
	}
	*s = next
	return nil
}

func (s *SalesPerson) String() string {
	return fmt.Sprintf("<SalesPerson(table_name=%q; id=%d; name=%q; email=%q; created=%s; modified=%s; active=%t)>",
		s.TableName(), s.ID(), s.Name, s.Email, formatTime(s.Created), formatTime(s.Modified), s.Active)
}
