package jsonstore

import (
	"os"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/aflsquad/statpatch/internal/domain/reconcile"
)

// LoadAliasTable reads the externalized alias configuration: a flat JSON
// object of bad-name to canonical-name pairs. A missing file yields an
// empty table so the matcher simply runs without tier one.
func LoadAliasTable(path string) (reconcile.AliasTable, error) {
	if path == "" {
		return reconcile.AliasTable{}, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return reconcile.AliasTable{}, nil
	}
	if err != nil {
		return reconcile.AliasTable{}, crerr.Wrap(err, "read alias table")
	}

	var entries map[string]string
	if err := jsoniter.Unmarshal(raw, &entries); err != nil {
		return reconcile.AliasTable{}, crerr.Wrapf(err, "parse alias table %s", path)
	}

	table, err := reconcile.NewAliasTable(entries)
	if err != nil {
		return reconcile.AliasTable{}, crerr.Wrapf(err, "validate alias table %s", path)
	}

	return table, nil
}

// LoadCorrections reads a correction batch file: a JSON array of
// name-keyed field sets.
func LoadCorrections(path string) ([]reconcile.Correction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrap(err, "read corrections file")
	}

	var corrections []reconcile.Correction
	if err := jsoniter.Unmarshal(raw, &corrections); err != nil {
		return nil, crerr.Wrapf(err, "parse corrections file %s", path)
	}

	return corrections, nil
}
