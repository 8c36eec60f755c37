// Package nacos provides an HTTP client for the configuration service console API.
//
// The client covers the calls the console needs: login, namespace CRUD and
// config listing, retrieval, publishing and deletion. It is stateless beyond
// the base URL; the access token obtained from Login is passed to every call.
//
// # Basic Usage
//
//	client := nacos.NewClient("http://127.0.0.1:8848")
//	client.SetTimeout(5 * time.Second)
//
//	login, err := client.Login(ctx, "nacos", "nacos")
//	if err != nil {
//	    return err
//	}
//
//	namespaces, err := client.ListNamespaces(ctx, login.AccessToken)
//
// # Single Attempt
//
// Every call is attempted exactly once. There is no retry loop and no cache;
// the HTTP client timeout and the caller's context bound each call.
//
// # Success Flags
//
// Mutating endpoints answer with a boolean body. CreateNamespace and friends
// return that flag as-is; the *Checked variants turn false into a request
// error so callers only have one failure path to handle.
//
// # Error Handling
//
// All failures are returned as *Error with one of three types:
//   - ErrTypeNetwork: the server could not be reached (with a subtype for
//     timeouts, refused connections, DNS failures and unreachable hosts)
//   - ErrTypeRequest: the server answered with a non-2xx status or rejected
//     the call; the response body is kept for diagnostics
//   - ErrTypeDecode: the body did not match the expected shape
//
// Use the helpers to inspect them:
//
//	if nacos.IsAuthError(err) {
//	    // token expired or credentials wrong
//	}
//	fmt.Println(nacos.ShortMessage(err))
//	for _, line := range nacos.TroubleshootingHint(err) {
//	    fmt.Println("  -", line)
//	}
//
// # Validation
//
// ValidateNamespaceID, ValidateNamespaceName and ValidateDataID check input
// locally and return *ValidationError before any request is made.
package nacos
