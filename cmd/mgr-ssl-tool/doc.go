// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mgr-ssl-tool generates and checks the SSL key set of a Uyuni/SUSE Manager
// server: a private Certificate Authority, the web server key, certificate
// request and certificate, and the RPM and tar archive that distribute them.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/mgr-ssl-tool/cmd/mgr-ssl-tool@latest
//
// # Usage
//
//	mgr-ssl-tool [options]
//
//	 step a mgr-ssl-tool --check-key [sub-options]
//	 step b mgr-ssl-tool --check-cert
//	 step 1 mgr-ssl-tool --gen-ca [sub-options]
//	 step 2 mgr-ssl-tool --gen-server [sub-options]
//
// Add --help after a base option to list its sub-options. Defaults shown in
// the help follow the rest of the command line:
//
//	mgr-ssl-tool --gen-ca --dir /root/ssl-build --help
//
// # Environment
//
//	MGR_SSL_DEFAULTS_FILE  YAML or JSON file with certificate subject defaults
//	MGR_SSL_LOG_FORMAT     "json" switches log lines to JSON objects
//
// # Exit status
//
// 0 on success or after printing help, 1 on any usage, validation or check
// error, 130 when interrupted.
package main
