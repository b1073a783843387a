package executor

import "fmt"

// 状态数据库key
const (
	configKey     = "mavl-pulsegame-config"
	registryKey   = "mavl-pulsegame-registry"
	tokenomicsKey = "mavl-pulsegame-tokenomics"
	oracleSetKey  = "mavl-pulsegame-oracleset"
	roundKeyFmt   = "mavl-pulsegame-round:%020d"
	ticketKeyFmt  = "mavl-pulsegame-ticket:%020d:%s:%020d"
	escrowKeyFmt  = "mavl-pulsegame-escrow:%s"
)

// 本地数据库key
const (
	roundStatusPrefixFmt = "LODB-pulsegame-round-status:%d:"
	roundStatusKeyFmt    = "LODB-pulsegame-round-status:%d:%018d"
	ticketAddrPrefixFmt  = "LODB-pulsegame-ticket-addr:%s:"
	ticketAddrKeyFmt     = "LODB-pulsegame-ticket-addr:%s:%018d"
	ticketRoundPrefixFmt = "LODB-pulsegame-ticket-round:%020d:"
	ticketRoundKeyFmt    = "LODB-pulsegame-ticket-round:%020d:%018d"
)

func calcConfigKey() []byte {
	return []byte(configKey)
}

func calcRegistryKey() []byte {
	return []byte(registryKey)
}

func calcTokenomicsKey() []byte {
	return []byte(tokenomicsKey)
}

func calcOracleSetKey() []byte {
	return []byte(oracleSetKey)
}

func calcRoundKey(roundID uint64) []byte {
	return []byte(fmt.Sprintf(roundKeyFmt, roundID))
}

func calcTicketKey(roundID uint64, addr string, nonce uint64) []byte {
	return []byte(fmt.Sprintf(ticketKeyFmt, roundID, addr, nonce))
}

func calcEscrowKey(addr string) []byte {
	return []byte(fmt.Sprintf(escrowKeyFmt, addr))
}

func calcRoundStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf(roundStatusPrefixFmt, status))
}

func calcRoundStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf(roundStatusKeyFmt, status, index))
}

func calcTicketAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf(ticketAddrPrefixFmt, addr))
}

func calcTicketAddrKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf(ticketAddrKeyFmt, addr, index))
}

func calcTicketRoundPrefix(roundID uint64) []byte {
	return []byte(fmt.Sprintf(ticketRoundPrefixFmt, roundID))
}

func calcTicketRoundKey(roundID uint64, index int64) []byte {
	return []byte(fmt.Sprintf(ticketRoundKeyFmt, roundID, index))
}
