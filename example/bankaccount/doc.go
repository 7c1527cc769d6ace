// Package bankaccount is a complete sample domain for the command-execution
// engine: a bank account aggregate with open, deposit, and withdraw
// commands.
//
// It shows the full wiring a client domain needs: events with stable type
// names, a pure state fold, commands carrying their reloaded state, and a
// codec registering one decoder per event type. The package tests run the
// whole pipeline against the in-memory store engine, including contention
// between concurrent writers.
package bankaccount
