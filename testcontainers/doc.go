/*
Package testcontainers runs the s3-call operation against real S3-compatible servers started in the local Docker
daemon, checking that every action behaves the same way on each of them.

The tests are behind the integration build tag:

	go test -tags integration ./testcontainers/...
*/
package testcontainers
