package state

import (
	"evmcore/common"

	"github.com/holiman/uint256"
)

type account struct {
	balance  *uint256.Int
	nonce    uint64
	code     []byte
	codeHash common.Hash
}

// MemDB is a map-backed StateDB. It backs the engine checkpoints in tests
// and lightweight execution contexts that do not persist state.
type MemDB struct {
	accounts map[common.Address]*account
}

func NewMemDB() *MemDB {
	return &MemDB{accounts: make(map[common.Address]*account)}
}

func (db *MemDB) account(addr common.Address) *account {
	acc, ok := db.accounts[addr]
	if !ok {
		acc = &account{balance: uint256.NewInt(0), codeHash: common.EmptyCodeHash}
		db.accounts[addr] = acc
	}
	return acc
}

func (db *MemDB) SubBalance(addr common.Address, amount *uint256.Int) {
	acc := db.account(addr)
	acc.balance = new(uint256.Int).Sub(acc.balance, amount)
}

func (db *MemDB) AddBalance(addr common.Address, amount *uint256.Int) {
	acc := db.account(addr)
	acc.balance = new(uint256.Int).Add(acc.balance, amount)
}

func (db *MemDB) GetBalance(addr common.Address) *uint256.Int {
	if acc, ok := db.accounts[addr]; ok {
		return new(uint256.Int).Set(acc.balance)
	}
	return uint256.NewInt(0)
}

func (db *MemDB) GetNonce(addr common.Address) uint64 {
	if acc, ok := db.accounts[addr]; ok {
		return acc.nonce
	}
	return 0
}

func (db *MemDB) SetNonce(addr common.Address, nonce uint64) {
	db.account(addr).nonce = nonce
}

func (db *MemDB) GetCode(addr common.Address) []byte {
	if acc, ok := db.accounts[addr]; ok {
		return acc.code
	}
	return nil
}

func (db *MemDB) SetCode(addr common.Address, code []byte) {
	acc := db.account(addr)
	acc.code = code
	acc.codeHash = common.GenerateHash(code)
}

func (db *MemDB) GetCodeHash(addr common.Address) common.Hash {
	if acc, ok := db.accounts[addr]; ok {
		return acc.codeHash
	}
	return common.Hash{}
}

func (db *MemDB) Copy() StateDB {
	cpy := NewMemDB()
	for addr, acc := range db.accounts {
		code := make([]byte, len(acc.code))
		copy(code, acc.code)
		cpy.accounts[addr] = &account{
			balance:  new(uint256.Int).Set(acc.balance),
			nonce:    acc.nonce,
			code:     code,
			codeHash: acc.codeHash,
		}
	}
	return cpy
}
