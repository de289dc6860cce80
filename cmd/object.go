package cmd

import (
	"fmt"
	"os"
	"time"

	"blobgate/core/config"
	"blobgate/core/logger"
	"blobgate/core/storage"
	_ "blobgate/core/storage/s3"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lsLimit       int
	getEncoding   string
	getOutput     string
	signExpiresIn int
)

// objectCmd groups the CLI operations against the configured bucket.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Operate on objects in the configured bucket",
	Long:  `Runs single storage operations (list, get, put, stat, copy, move, delete, sign) against the configured backend.`,
}

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects under a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, logg, err := openDriver()
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		count := 0
		for entry, err := range drv.FlatList(cmd.Context(), prefix) {
			if err != nil {
				return err
			}
			fmt.Println(entry.Path)
			count++
			if lsLimit > 0 && count >= lsLimit {
				break
			}
		}
		logg.Debug("Listing finished", zap.String("prefix", prefix), zap.Int("count", count))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <location>",
	Short: "Download an object",
	Long:  `Prints the object as text decoded with --encoding, or writes the raw bytes to --output.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, _, err := openDriver()
		if err != nil {
			return err
		}

		if getOutput != "" {
			resp, err := drv.GetBuffer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return os.WriteFile(getOutput, resp.Content, 0644)
		}

		resp, err := drv.Get(cmd.Context(), args[0], getEncoding)
		if err != nil {
			return err
		}
		fmt.Print(resp.Content)
		return nil
	},
}

var putCmd = &cobra.Command{
	Use:   "put <location> <file>",
	Short: "Upload a file to an object location",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, logg, err := openDriver()
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[1], err)
		}
		defer f.Close()

		if _, err := drv.Put(cmd.Context(), args[0], f); err != nil {
			return err
		}
		logg.Info("Object uploaded", zap.String("location", args[0]), zap.String("file", args[1]))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <location>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, logg, err := openDriver()
		if err != nil {
			return err
		}

		if _, err := drv.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		// The backend does not report whether the object existed
		logg.Info("Delete issued", zap.String("location", args[0]))
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat <location>",
	Short: "Show object metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, _, err := openDriver()
		if err != nil {
			return err
		}

		resp, err := drv.GetStat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Location: %s\nSize: %d\nModified: %s\n", args[0], resp.Size, resp.Modified.Format(time.RFC3339))
		return nil
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <source> <destination>",
	Short: "Copy an object server-side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, logg, err := openDriver()
		if err != nil {
			return err
		}

		if _, err := drv.Copy(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("Object copied", zap.String("source", args[0]), zap.String("destination", args[1]))
		return nil
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move an object (copy + delete, not atomic)",
	Long: `Moves an object by copying it and then deleting the source.
The two steps are not atomic: if the delete fails after a successful copy,
both objects remain and the delete error is reported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, logg, err := openDriver()
		if err != nil {
			return err
		}

		if _, err := drv.Move(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("Object moved", zap.String("source", args[0]), zap.String("destination", args[1]))
		return nil
	},
}

var signCmd = &cobra.Command{
	Use:   "sign <location>",
	Short: "Issue a pre-signed retrieval URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, _, err := openDriver()
		if err != nil {
			return err
		}

		opts := storage.SignedURLOptions{ExpiresIn: time.Duration(signExpiresIn) * time.Second}
		resp, err := drv.GetSignedURL(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		fmt.Println(resp.SignedURL)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(lsCmd, getCmd, putCmd, rmCmd, statCmd, cpCmd, mvCmd, signCmd)

	lsCmd.Flags().IntVar(&lsLimit, "limit", 0, "Maximum number of entries (0 = all)")
	getCmd.Flags().StringVar(&getEncoding, "encoding", "utf-8", "Charset to decode the object as")
	getCmd.Flags().StringVar(&getOutput, "output", "", "Write raw bytes to this file instead of stdout")
	signCmd.Flags().IntVar(&signExpiresIn, "expires-in", 0, "URL lifetime in seconds (default 900)")
}

// openDriver loads the configuration and opens the configured storage driver.
func openDriver() (storage.Driver, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	drv, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage driver: %w", err)
	}
	return drv, logg, nil
}
