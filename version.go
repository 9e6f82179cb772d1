package main

var version = "0.1.0"
