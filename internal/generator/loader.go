package generator

import (
	"fmt"
	"log/slog"

	"github.com/saffronjam/go-glaze/internal/common"
)

// RenderLoader writes the aggregate loadGL function, one guarded call per version.
func RenderLoader(w *common.Writer, versions []string) {
	w.Println("\n\ndef loadGL():")
	for _, v := range versions {
		name := common.GetNameFromVersion(v)
		w.Printf("    if not %s_loadGL():", name)
		w.Printf("        raise RuntimeError('%s could not be loaded')", name)
	}
}

// WriteLoader appends the aggregate loader to path.
func WriteLoader(log *slog.Logger, path string, versions []string) (FileReport, error) {
	log.Info("finalizing", "path", path)

	w := common.NewWriter()
	RenderLoader(w, versions)
	if err := w.AppendToFile(path); err != nil {
		return FileReport{}, fmt.Errorf("finalizing loader: %w", err)
	}

	return FileReport{Kind: "loader", Path: path, Emitted: versions}, nil
}
