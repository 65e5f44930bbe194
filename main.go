package main

import (
	"flag"
	"log"
	"os"

	"github.com/signflow/document-backend/cmd"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldUpdateDocument := flag.Bool("update-document", false, "Apply a document update request")
	shouldListAuditLogs := flag.Bool("document-audit-logs", false, "List the audit logs of a document")
	userId := flag.Int64("user-id", 0, "Id of the user running the command")
	userEmail := flag.String("user-email", "", "Email of the user, recorded in the audit logs")
	userName := flag.String("user-name", "", "Name of the user, recorded in the audit logs")
	teamId := flag.Int64("team-id", 0, "Id of the team of the document")
	documentId := flag.Int64("document-id", 0, "Id of the document")
	file := flag.String("file", "-", "Path of the JSON update request, - for stdin")
	flag.Parse()

	compiledConfig := cmd.CompiledConfig{Version: Version}
	user := cmd.DocumentCommandUser{
		UserId:    *userId,
		UserEmail: *userEmail,
		UserName:  *userName,
		TeamId:    *teamId,
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldUpdateDocument {
		if err := cmd.RunUpdateDocument(compiledConfig, user, *documentId, *file, os.Stdout); err != nil {
			os.Exit(1)
		}
	}

	if *shouldListAuditLogs {
		if err := cmd.RunListDocumentAuditLogs(compiledConfig, user, *documentId, os.Stdout); err != nil {
			os.Exit(1)
		}
	}
}
