package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/klauspost/pgzip"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xenking/sandwich-unwrapped/internal/domain/user"
	"github.com/xenking/sandwich-unwrapped/internal/repository"
)

func newSeedUsersCmd() *cobra.Command {
	var (
		databaseURL string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "seed-users <file>",
		Short: "Load local users from a JSON or gzipped JSON file",
		Long: `Reads an array of {"first_name": ..., "last_name": ...} objects and stores
each user in the local PostgreSQL database. Files ending in .gz are
decompressed on the fly.

Existing users are kept unless --strict is set, in which case a duplicate
name aborts the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("database url is required (--database-url or DATABASE_URL)")
			}

			users, err := readUsersFile(args[0])
			if err != nil {
				return err
			}

			pool, err := repository.NewPool(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := repository.RunMigrations(ctx, pool); err != nil {
				return err
			}

			n, err := seedUsers(ctx, repository.NewUserRepository(pool), users, strict)
			if err != nil {
				return err
			}
			zctx.From(ctx).Info("Users seeded",
				zap.Int("total", len(users)),
				zap.Int("stored", n),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string (default $DATABASE_URL)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a user already exists")
	return cmd
}

type seedUser struct {
	FirstName string
	LastName  string
}

type userWriter interface {
	Create(ctx context.Context, firstName, lastName string) (*user.User, error)
	Upsert(ctx context.Context, firstName, lastName string) (*user.User, error)
}

func seedUsers(ctx context.Context, w userWriter, users []seedUser, strict bool) (int, error) {
	store := w.Upsert
	if strict {
		store = w.Create
	}

	lg := zctx.From(ctx)
	for i, u := range users {
		stored, err := store(ctx, u.FirstName, u.LastName)
		if err != nil {
			return i, errors.Wrapf(err, "store %s %s", u.FirstName, u.LastName)
		}
		lg.Debug("User stored",
			zap.Int64("id", stored.ID),
			zap.String("first_name", stored.FirstName),
			zap.String("last_name", stored.LastName),
		)
	}
	return len(users), nil
}

func readUsersFile(path string) ([]seedUser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader")
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return readUsers(r)
}

// readUsers decodes a JSON array of users. Both names are required.
func readUsers(r io.Reader) ([]seedUser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	users := []seedUser{}
	err = jx.DecodeBytes(data).Arr(func(d *jx.Decoder) error {
		var u seedUser
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			var err error
			switch string(key) {
			case "first_name":
				u.FirstName, err = d.Str()
			case "last_name":
				u.LastName, err = d.Str()
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return err
		}

		u.FirstName = strings.TrimSpace(u.FirstName)
		u.LastName = strings.TrimSpace(u.LastName)
		if u.FirstName == "" || u.LastName == "" {
			return errors.Errorf("user %d: first_name and last_name are required", len(users))
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}
