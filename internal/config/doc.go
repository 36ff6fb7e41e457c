// Package config locates the data directory and reads the optional config
// file that supplies default option values.
//
// # Data Directory
//
// DataDir resolves, in order:
//
//  1. -datadir, which must name an existing directory (ErrDataDirMissing)
//  2. ~/.eternalcoin, created on first use
//
// With -testnet the testnet subdirectory of the chosen directory is used.
//
// # Config File
//
// The file is TOML, at -conf or <datadir>/eternalcoin.toml. Each top-level
// key supplies values for the option of the same name:
//
//	rpcuser = "alice"          # -rpcuser=alice
//	rpcport = 9347             # -rpcport=9347
//	splash = false             # -splash=0
//	addnode = ["a", "b"]       # -addnode=a -addnode=b
//
// Tables are rejected. A missing file is not an error.
//
// Values are merged underneath the command line with params.Store.Merge, so
// anything given on the command line wins.
package config
