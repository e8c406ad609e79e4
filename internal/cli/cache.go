package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/cache"
)

// cacheCommand groups the local cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the plan and render cache",
		Long: `floorsmith caches synthesized plans, column grids and rendered drawings
under $XDG_CACHE_HOME/floorsmith (or ~/.cache/floorsmith). Entries expire on
their own; clear removes them all at once.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached entry",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return runCacheClear() },
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show how many entries the cache holds",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return runCacheStats() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("locate cache: %w", err)
				}
				fmt.Println(dir)
				return nil
			},
		},
	)
	return cmd
}

func runCacheClear() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("locate cache: %w", err)
	}
	n, err := clearCache(dir)
	if err != nil {
		return err
	}
	if n == 0 {
		printInfo("Cache is empty")
		return nil
	}
	printSuccess("Cleared %d cached entries", n)
	printDetail("%s", dir)
	return nil
}

func runCacheStats() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("locate cache: %w", err)
	}
	entries, size, err := cacheUsage(dir)
	if err != nil {
		return err
	}
	printKeyValue("Directory", dir)
	printKeyValue("Entries", fmt.Sprint(entries))
	printKeyValue("Size", fmt.Sprintf("%.1f KiB", float64(size)/1024))
	return nil
}

// cacheUsage counts the entry files under dir and their total size. A
// missing directory is an empty cache.
func cacheUsage(dir string) (entries int, size int64, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries++
		size += info.Size()
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, 0, nil
	}
	return entries, size, err
}

// clearCache empties the file cache at dir and reports how many entries it
// held.
func clearCache(dir string) (int, error) {
	n, _, err := cacheUsage(dir)
	if err != nil || n == 0 {
		return 0, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, err
	}
	if err := fc.Clear(); err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}
