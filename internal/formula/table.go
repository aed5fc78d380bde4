package formula

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

//go:embed data/koujue.yaml
var tableFS embed.FS

var (
	tableOnce sync.Once
	table     map[string]domain.Formula
	tableErr  error
)

func loadTable() (map[string]domain.Formula, error) {
	tableOnce.Do(func() {
		raw, err := tableFS.ReadFile("data/koujue.yaml")
		if err != nil {
			tableErr = fmt.Errorf("read embedded koujue table: %w", err)
			return
		}
		var entries []domain.Formula
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			tableErr = fmt.Errorf("parse koujue table: %w", err)
			return
		}
		table = make(map[string]domain.Formula, len(entries))
		for _, e := range entries {
			table[e.Action] = e
		}
	})
	return table, tableErr
}
