// facial-transfer copies baked facial animation from an engine export onto
// a face control board rig.
//
// # Key capabilities
//
//   - check: load a mapping table and verify it compiles
//   - transfer: run a full transfer session against scene snapshots
//
// Scene snapshots are JSON files describing the exported animation source
// and the target rig. The mapping table is YAML; without -mapping the
// builtin table for the stock control board is used.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"facial-transfer/internal/mapping"
	"facial-transfer/internal/scene"
	"facial-transfer/internal/transfer"
)

const usage = `facial-transfer - copy facial animation keys onto a control board rig

Commands:
  check     validate a mapping table
  transfer  transfer a source snapshot onto a rig snapshot

Run 'facial-transfer <command> -help' for command flags.
`

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] Loaded environment variables from .env file")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "check":
		err = runCheck(os.Args[2:])
	case "transfer":
		err = runTransfer(os.Args[2:])
	case "help", "-help", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// loadTable resolves the mapping table: the -mapping flag wins, then the
// FACIAL_TRANSFER_MAPPING environment variable, then the builtin table.
func loadTable(path string) (*mapping.Table, error) {
	if path == "" {
		path = os.Getenv("FACIAL_TRANSFER_MAPPING")
	}

	if path == "" {
		return mapping.Default()
	}

	mf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return mapping.Compile(mf)
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	mappingPath := fs.String("mapping", "", "mapping table YAML (default: builtin table)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	table, err := loadTable(*mappingPath)
	if err != nil {
		return err
	}

	rigs := table.Rigs()
	log.Printf("[INFO] mapping ok: schema version %s, %d entries", table.Version(), table.Len())

	if rigs.Source != "" || rigs.Target != "" {
		log.Printf("[INFO] authored for %s -> %s", rigs.Source, rigs.Target)
	}

	return nil
}

func runTransfer(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	sourcePath := fs.String("source", "", "source animation snapshot JSON (required)")
	rigPath := fs.String("rig", "", "target rig snapshot JSON (required)")
	mappingPath := fs.String("mapping", "", "mapping table YAML (default: builtin table)")
	outPath := fs.String("out", "", "where to write the updated rig snapshot (default: the -rig file)")
	zeroOut := fs.Bool("zero", false, "reset mapped controls to 0 before applying keys")
	keepTangents := fs.Bool("tangents", true, "carry source tangents onto written keys")
	debug := fs.Bool("debug", false, "dump the full transfer report")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *sourcePath == "" || *rigPath == "" {
		return fmt.Errorf("-source and -rig are required")
	}

	table, err := loadTable(*mappingPath)
	if err != nil {
		return err
	}

	srcSnap, err := scene.LoadSourceSnapshot(*sourcePath)
	if err != nil {
		return err
	}

	rigSnap, err := scene.LoadRigSnapshot(*rigPath)
	if err != nil {
		return err
	}

	host := scene.NewMemHost()
	host.AddSourceFile(*sourcePath, srcSnap.Channels)
	rig := host.LoadRig(rigSnap)

	opts := transfer.Options{
		PreserveTangents: *keepTangents,
		ZeroOutControls:  *zeroOut,
	}

	report, runErr := transfer.NewSession(host, table, opts).Run(*sourcePath, rig)
	if report != nil {
		printReport(report, *debug)
	}

	if runErr != nil {
		return runErr
	}

	out := *outPath
	if out == "" {
		out = *rigPath
	}

	updated, err := host.Snapshot(rig)
	if err != nil {
		return err
	}

	if err := scene.WriteRigSnapshot(updated, out); err != nil {
		return err
	}

	log.Printf("[INFO] wrote updated rig snapshot to %s", out)

	return nil
}

func printReport(report *transfer.Report, debug bool) {
	for _, d := range report.Diags.All() {
		log.Printf("[%s] %s", strings.ToUpper(d.Severity.String()), d.String())
	}

	log.Printf("[INFO] %s", report.Summary())

	if debug {
		spew.Dump(report)
	}
}
