package main

import "github.com/lincolncommercialsolutions/secret-scanner/cmd/secretscanner"

func main() {
	secretscanner.Execute()
}
