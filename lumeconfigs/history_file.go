package lumeconfigs

import (
	"os"
	"path/filepath"

	"github.com/lumelang/lume/cmds"
	"github.com/lumelang/lume/configs"
	"github.com/lumelang/lume/vars"
)

// HistoryFile is the path the interactive tap stores its input history in.
type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history-file")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	path := vars.FirstNonZero(
		vars.DerefOrZero(historyFileFlag),
		configs.First[string](loader, "history_file"),
	)
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".lume_history")
		}
	}
	return HistoryFile(path)
}
