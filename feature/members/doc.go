// Package members wires the loader and the reconciler into an export run.
//
// The Service resolves the configured paths, checks that both exports
// exist, loads them, reconciles, and writes the import CSV into the output
// directory. A run with no missing members writes nothing and reports
// Written=false.
//
// # Usage
//
//	svc := members.NewService(cfg, logg)
//	report, err := svc.Export(members.ExportOptions{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Summary.Missing, report.OutputPath)
package members
