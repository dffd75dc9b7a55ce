package codec

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

const accountCharmap = "abcdefghijklmnopqrstuvwxyz12345."

var identityMagic = []byte{0x45, 0x58, 0x53, 0x41, 0x54, 0x01}

// OpReturnAccount decodes `OP_RETURN <len> "EXSAT" 0x01 <account>` from a script.
func OpReturnAccount(script []byte) (model.Account, bool) {
	if len(script) < 2+len(identityMagic)+1 || script[0] != txscript.OP_RETURN {
		return "", false
	}
	if int(script[1]) != len(script)-2 {
		return "", false
	}
	if !bytes.Equal(script[2:2+len(identityMagic)], identityMagic) {
		return "", false
	}
	raw := script[2+len(identityMagic):]
	name := make([]byte, 0, len(raw))
	for _, c := range raw {
		if int(c) >= len(accountCharmap) {
			return "", false
		}
		name = append(name, accountCharmap[c])
	}
	if !ValidAccountName(string(name)) {
		return "", false
	}
	return model.Account(name), true
}

// EncodeOpReturnAccount builds the identity script for account.
func EncodeOpReturnAccount(account model.Account) ([]byte, bool) {
	if !ValidAccountName(string(account)) {
		return nil, false
	}
	payload := append([]byte{}, identityMagic...)
	for _, c := range []byte(account) {
		payload = append(payload, byte(bytes.IndexByte([]byte(accountCharmap), c)))
	}
	return append([]byte{txscript.OP_RETURN, byte(len(payload))}, payload...), true
}

// ValidAccountName checks the 13-character account alphabet. Dots may not lead or trail.
func ValidAccountName(name string) bool {
	if len(name) == 0 || len(name) > 13 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '1' && c <= '5':
		case c == '.':
			if i == 0 || i == len(name)-1 {
				return false
			}
		default:
			return false
		}
		// the 13th character only has four bits
		if i == 12 && c > 'j' {
			return false
		}
	}
	return true
}

// CoinbaseMiner returns the identity embedded in an OP_RETURN output, if any.
func CoinbaseMiner(coinbase *wire.MsgTx) (model.Account, bool) {
	for _, out := range coinbase.TxOut {
		if account, ok := OpReturnAccount(out.PkScript); ok {
			return account, true
		}
	}
	return "", false
}

// PayoutAddresses extracts the addresses paid by non-zero coinbase outputs.
func PayoutAddresses(coinbase *wire.MsgTx, params *chaincfg.Params) []string {
	var result []string
	for _, out := range coinbase.TxOut {
		if out.Value <= 0 {
			continue
		}
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(out.PkScript, params)
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			result = append(result, addr.EncodeAddress())
		}
	}
	return result
}
