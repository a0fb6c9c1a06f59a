package model

// Package model defines domain data structures used across the app: conversion
// modes, file entries, batches, progress events, and run states. Batches are
// immutable snapshots handed from the task list to the runner.
