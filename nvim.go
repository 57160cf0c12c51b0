package genfix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/neovim/go-client/nvim"
)

type NvimManager struct {
	v *nvim.Nvim
}

// NewNvimManager dials an already-running instance. Unlike an editor plugin we
// never start one ourselves; no reachable instance is reported as an error and
// the caller treats reloading as optional.
func NewNvimManager() (*NvimManager, error) {
	addr := os.Getenv("NVIM_LISTEN_ADDRESS")
	if addr == "" {
		addr = os.Getenv("NVIM")
	}
	if addr == "" {
		return nil, errors.New("no running nvim instance")
	}

	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, err
	}
	return &NvimManager{v: v}, nil
}

func (m *NvimManager) Close() {
	if m.v != nil {
		m.v.Close()
	}
}

// ReloadFiles asks the editor to re-check timestamps for each rewritten file
// so open buffers pick up the on-disk contents.
func (m *NvimManager) ReloadFiles(paths []string) error {
	b := m.v.NewBatch()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		b.Command(fmt.Sprintf("silent! checktime %s", abs))
	}
	return b.Execute()
}
