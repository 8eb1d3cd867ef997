package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// backupFileName returns the conventional backup name for the given day,
// e.g. "luvletter-backup-2026-08-28.json".
func backupFileName(now time.Time) string {
	return fmt.Sprintf("luvletter-backup-%s.json", now.Format("2006-01-02"))
}

// Backup writes every collection to a pretty-printed JSON file in the
// current directory.
func (a *App) Backup(ctx context.Context) error {

	doc, err := a.store.ExportAll(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	name := backupFileName(time.Now())
	if err := os.WriteFile(name, data, 0o600); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Backup written to", name)
	return nil
}

// Restore loads a backup file. Collections absent from the file keep their
// current contents; present ones are replaced wholesale.
func (a *App) Restore(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Backup file to load", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	var doc models.StoreDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if !GetConfirmation(a.reader, "This replaces the collections present in the file. Continue?", os.Stdout) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.store.ImportAll(ctx, doc); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Backup loaded.")
	return nil
}
