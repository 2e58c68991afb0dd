package tests

// The service mocks in mocks_test.go are written by hand. To switch a
// service to a generated mock instead:
//
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name CommentService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename comment_service_mock.go --with-expecter
