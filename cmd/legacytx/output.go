package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/goodnatureofminers/legacytx/internal/legacytx/service"
)

func writeInspection(out io.Writer, res service.Inspection) error {
	var sb strings.Builder

	if res.Err != nil {
		fmt.Fprintf(&sb, "[%d] error: %v\n", res.Index, res.Err)
		_, err := io.WriteString(out, sb.String())
		return err
	}

	tx := res.Transaction
	fmt.Fprintf(&sb, "[%d] txid %s version %d lock_time %d total %d sat\n",
		res.Index, res.TxID, tx.Version, tx.LockTime, res.TotalValue)
	for i, in := range tx.Inputs {
		fmt.Fprintf(&sb, "  in  %d %s seq %d script_sig %s\n",
			i, in.PreviousOutput, in.Sequence, hex.EncodeToString(in.ScriptSig))
	}
	for i, o := range tx.Outputs {
		info := res.Outputs[i]
		fmt.Fprintf(&sb, "  out %d %d sat %s [%s]", i, o.Value, info.Class, info.Asm)
		if len(info.Addresses) > 0 {
			fmt.Fprintf(&sb, " -> %s", strings.Join(info.Addresses, ", "))
		}
		sb.WriteByte('\n')
	}
	for _, issue := range res.Issues {
		fmt.Fprintf(&sb, "  note %v\n", issue)
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
